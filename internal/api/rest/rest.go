package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	router.NoRoute(handler.NotFound)

	v1 := router.Group("/api/v1")
	{
		// Paginated searches
		v1.GET("/addresses", handler.FindAddresses)
		v1.GET("/tokens", handler.FindTokens)
		v1.GET("/token-holders", handler.FindTokenHolders)

		// Metadata fields
		v1.GET("/metadata/:id/images", handler.GetMetadataImages)
		v1.GET("/metadata/:id/assets", handler.GetMetadataAssets)
		v1.GET("/metadata/:id/links", handler.GetMetadataLinks)
		v1.GET("/metadata/:id/tags", handler.GetMetadataTags)

		// Transactions
		v1.GET("/transactions/:hash/wrapped", handler.GetWrappedTransactions)
		v1.GET("/wrapped-transactions/:id/parameters", handler.GetWrappedTransactionParameters)

		// Methods
		v1.GET("/methods/:id", handler.GetMethod)
		v1.GET("/methods/:id/parameters", handler.GetMethodParameters)
	}
}

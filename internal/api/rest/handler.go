package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/lukso-network/lukso-indexer-api/internal/api/shared/errors"
	"github.com/lukso-network/lukso-indexer-api/internal/api/shared/executor"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// FindAddresses searches contracts with their metadata
	// GET /api/v1/addresses?input=&type=&interfaceCode=&interfaceVersion=&tag=&havePermissions=&page=
	FindAddresses(c *gin.Context)

	// FindTokens searches contract tokens with their metadata
	// GET /api/v1/tokens?address=&input=&contractName=&contractSymbol=&interfaceCode=&interfaceVersion=&owner=&page=
	FindTokens(c *gin.Context)

	// FindTokenHolders searches balances and token ownerships
	// GET /api/v1/token-holders?holderAddress=&contractAddress=&tokenId=&minBalance=&maxBalance=&holderAfterBlock=&holderBeforeBlock=&page=
	FindTokenHolders(c *gin.Context)

	// GET /api/v1/metadata/:id/images?type=
	GetMetadataImages(c *gin.Context)
	// GET /api/v1/metadata/:id/assets?fileType=
	GetMetadataAssets(c *gin.Context)
	// GET /api/v1/metadata/:id/links
	GetMetadataLinks(c *gin.Context)
	// GET /api/v1/metadata/:id/tags
	GetMetadataTags(c *gin.Context)

	// GetWrappedTransactions lists the calls nested in a transaction
	// GET /api/v1/transactions/:hash/wrapped?methodId=
	GetWrappedTransactions(c *gin.Context)
	// GET /api/v1/wrapped-transactions/:id/parameters
	GetWrappedTransactionParameters(c *gin.Context)

	// GET /api/v1/methods/:id
	GetMethod(c *gin.Context)
	// GET /api/v1/methods/:id/parameters
	GetMethodParameters(c *gin.Context)

	// HealthCheck pings both databases
	// GET /health
	HealthCheck(c *gin.Context)

	// NotFound answers unknown routes
	NotFound(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) FindAddresses(c *gin.Context) {
	query, err := ParseFindAddressesQuery(c)
	if err != nil {
		respondQueryError(c, err)
		return
	}

	page, err := h.executor.FindAddresses(c.Request.Context(), *query)
	if err != nil {
		respondError(c, err, "Failed to find addresses")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *handler) FindTokens(c *gin.Context) {
	query, err := ParseFindTokensQuery(c)
	if err != nil {
		respondQueryError(c, err)
		return
	}

	page, err := h.executor.FindTokens(c.Request.Context(), *query)
	if err != nil {
		respondError(c, err, "Failed to find tokens")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *handler) FindTokenHolders(c *gin.Context) {
	query, err := ParseFindTokenHoldersQuery(c)
	if err != nil {
		respondQueryError(c, err)
		return
	}

	page, err := h.executor.FindTokenHolders(c.Request.Context(), *query)
	if err != nil {
		respondError(c, err, "Failed to find token holders")
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *handler) GetMetadataImages(c *gin.Context) {
	metadataID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid metadata id", err.Error())
		return
	}

	images, err := h.executor.FindImages(c.Request.Context(), metadataID, parseNullFilter(optionalQuery(c, "type")))
	if err != nil {
		respondError(c, err, "Failed to get metadata images", zap.Int("metadata_id", metadataID))
		return
	}

	c.JSON(http.StatusOK, images)
}

func (h *handler) GetMetadataAssets(c *gin.Context) {
	metadataID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid metadata id", err.Error())
		return
	}

	assets, err := h.executor.FindAssets(c.Request.Context(), metadataID, optionalQuery(c, "fileType"))
	if err != nil {
		respondError(c, err, "Failed to get metadata assets", zap.Int("metadata_id", metadataID))
		return
	}

	c.JSON(http.StatusOK, assets)
}

func (h *handler) GetMetadataLinks(c *gin.Context) {
	metadataID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid metadata id", err.Error())
		return
	}

	links, err := h.executor.FindLinks(c.Request.Context(), metadataID)
	if err != nil {
		respondError(c, err, "Failed to get metadata links", zap.Int("metadata_id", metadataID))
		return
	}

	c.JSON(http.StatusOK, links)
}

func (h *handler) GetMetadataTags(c *gin.Context) {
	metadataID, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid metadata id", err.Error())
		return
	}

	tags, err := h.executor.FindTags(c.Request.Context(), metadataID)
	if err != nil {
		respondError(c, err, "Failed to get metadata tags", zap.Int("metadata_id", metadataID))
		return
	}

	c.JSON(http.StatusOK, tags)
}

func (h *handler) GetWrappedTransactions(c *gin.Context) {
	hash := c.Param("hash")
	if !isHexOfLength(hash, hashLength) {
		respondBadRequest(c, "Invalid transaction hash", hash)
		return
	}

	methodID := optionalQuery(c, "methodId")
	if methodID != nil && !isHexOfLength(*methodID, selectorLength) {
		respondValidationError(c, "invalid methodId: "+*methodID)
		return
	}

	wrapped, err := h.executor.FindWrappedTxs(c.Request.Context(), hash, methodID)
	if err != nil {
		respondError(c, err, "Failed to get wrapped transactions", zap.String("hash", hash))
		return
	}

	c.JSON(http.StatusOK, wrapped)
}

func (h *handler) GetWrappedTransactionParameters(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid wrapped transaction id", err.Error())
		return
	}

	params, err := h.executor.FindWrappedTxParameters(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get wrapped transaction parameters", zap.Int("wrapped_transaction_id", id))
		return
	}

	c.JSON(http.StatusOK, params)
}

func (h *handler) GetMethod(c *gin.Context) {
	id := c.Param("id")
	if !isHexOfLength(id, selectorLength) {
		respondBadRequest(c, "Invalid method id", id)
		return
	}

	method, err := h.executor.FindMethod(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get method", zap.String("method_id", id))
		return
	}
	if method == nil {
		respondNotFound(c, "Method not found", id)
		return
	}

	c.JSON(http.StatusOK, method)
}

func (h *handler) GetMethodParameters(c *gin.Context) {
	id := c.Param("id")
	if !isHexOfLength(id, selectorLength) {
		respondBadRequest(c, "Invalid method id", id)
		return
	}

	params, err := h.executor.FindMethodParameters(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get method parameters", zap.String("method_id", id))
		return
	}

	c.JSON(http.StatusOK, params)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.executor.CheckHealth(c.Request.Context()); err != nil {
		logger.WarnCtx(c.Request.Context(), "Health check failed", zap.Error(err))
		respondWithError(c, http.StatusServiceUnavailable, apierrors.NewUnavailableError("Database unavailable"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "lukso-indexer-api",
	})
}

func (h *handler) NotFound(c *gin.Context) {
	respondNotFound(c, "Resource not found", c.Request.URL.Path)
}

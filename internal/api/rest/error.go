package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/lukso-network/lukso-indexer-api/internal/api/shared/errors"
	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, apiErr *apierrors.APIError) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, apierrors.NewValidationError(details))
}

// respondError maps an executor error to a response.
// API errors keep their code, invalid input is a validation failure, anything else is logged and hidden.
func respondError(c *gin.Context, err error, message string, fields ...zap.Field) {
	var apiErr *apierrors.APIError
	switch {
	case errors.As(err, &apiErr):
		respondWithError(c, statusForCode(apiErr.Code), apiErr)
	case errors.Is(err, domain.ErrInvalidInput):
		respondValidationError(c, err.Error())
	default:
		logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.FullPath()))...)
		respondWithError(c, http.StatusInternalServerError, apierrors.NewInternalError(message))
	}
}

func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest, apierrors.ErrCodeValidationFailed:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondQueryError sends a 400 for a query that could not be bound or validated
func respondQueryError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		respondWithError(c, http.StatusBadRequest, apiErr)
		return
	}
	respondValidationError(c, err.Error())
}

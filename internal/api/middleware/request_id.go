package middleware

import (
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// maxRequestIDLength bounds client supplied ids
const maxRequestIDLength = 64

// RequestID reuses the client's X-Request-ID or generates one, echoes it in the response
// and tags the request's sentry scope with it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		hub := sentry.GetHubFromContext(c.Request.Context())
		if hub == nil {
			hub = sentry.CurrentHub().Clone()
			c.Request = c.Request.WithContext(sentry.SetHubOnContext(c.Request.Context(), hub))
		}
		hub.Scope().SetTag(requestIDKey, id)

		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, empty when the middleware did not run
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

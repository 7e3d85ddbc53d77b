package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "familia/internal/errors"
)

// APIKeyHeader carries the shared family key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth guards a route group with the shared family key. An empty key
// means the deployment never set one, so the group answers 503 instead of
// running unprotected.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrServiceNotConfigured)
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

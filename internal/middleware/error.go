package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "familia/internal/errors"
	"familia/internal/logger"
)

// ErrorHandler turns errors attached to the Gin context into the standard
// {"error":{"code","message"}} envelope. Causes are logged, never sent.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			logger.Named("http").Errorw("unexpected error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"request_id", RequestID(c),
			)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			logger.Named("http").Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
				"request_id", RequestID(c),
			)
		}
		writeError(c, appErr)
	}
}

// abortWithError stops the chain and writes appErr.
func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.Abort()
	writeError(c, appErr)
}

func writeError(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

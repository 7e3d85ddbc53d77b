package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"familia/internal/logger"
	"familia/internal/uuid"
)

const (
	requestIDKey    = "requestID"
	requestIDHeader = "X-Request-ID"
	maxRequestIDLen = 128
)

// RequestLogging tags each request with an ID, reusing the caller's
// X-Request-ID when it sends one, and logs the outcome once the handler
// returns.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.New()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		log := logger.Named("http")
		switch {
		case status >= http.StatusInternalServerError:
			log.Errorw("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warnw("request", fields...)
		default:
			log.Infow("request", fields...)
		}
	}
}

// RequestID returns the ID RequestLogging assigned, or "" outside it.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

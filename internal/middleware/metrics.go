package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"familia/internal/metrics"
)

// Metrics records method, matched route and status of each request.
// Unmatched paths are grouped under one label to keep cardinality bounded.
func Metrics(recorder metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.ObserveHTTP(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

package middleware

import (
	"strconv"
	"time"

	"parkgate/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}

		c.Next()

		metrics.HTTPRequestsTotal.
			WithLabelValues(handler, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
		metrics.HTTPRequestDuration.
			WithLabelValues(handler, c.Request.Method).
			Observe(time.Since(start).Seconds())
	}
}

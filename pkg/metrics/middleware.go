package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware records HTTP metrics per route. Probe and scrape routes are skipped.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "/metrics" || strings.HasPrefix(route, "/health/") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		HTTPRequestDuration.WithLabelValues(route, c.Request.Method, status).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(route, c.Request.Method, status).Inc()
	}
}

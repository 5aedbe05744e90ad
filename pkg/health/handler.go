package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// LivenessHandler answers 200 while the process runs.
func LivenessHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": StatusUp})
	}
}

// ReadinessHandler answers 503 when any dependency is down and logs the failing checks.
func ReadinessHandler(registry *Registry, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		response := registry.CheckAll(ctx)
		if response.Status == StatusUp {
			c.JSON(http.StatusOK, response)
			return
		}

		for _, check := range response.Checks {
			if check.Status == StatusDown {
				slog.WarnContext(ctx, "Readiness check failed", "check", check.Name, "message", check.Message)
			}
		}
		c.JSON(http.StatusServiceUnavailable, response)
	}
}

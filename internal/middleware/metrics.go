package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smart-timetable/dashboard-api/internal/service"
)

// Metrics observes every request's method, route and latency. The scrape
// endpoint itself is left out.
func Metrics(metrics *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		metrics.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

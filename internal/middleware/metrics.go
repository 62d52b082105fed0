package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/meeting-planner-api/internal/service"
)

// unmatchedRoute labels requests that hit no registered route, keeping the
// path label bounded to the route table.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that records request metrics by route template.
// Prometheus scrapes of scrapePath are not recorded.
func Metrics(metricsSvc *service.MetricsService, scrapePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil || (scrapePath != "" && c.Request.URL.Path == scrapePath) {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

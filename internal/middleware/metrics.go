package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/gestor-negocios-api/internal/metrics"
)

// Metrics records the latency of each request under its route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

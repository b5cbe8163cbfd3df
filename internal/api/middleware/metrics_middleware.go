package middleware

import (
	"strconv"

	"github.com/Malvezin/miglesMakeStore/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware conta requisições por rota e status.
func MetricsMiddleware(m *metrics.StoreMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "not_found"
		}
		m.IncRequest(handler, strconv.Itoa(c.Writer.Status()))
	}
}

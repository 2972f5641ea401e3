package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"greenbook/internal/pkg/metrics"
)

// MetricsMiddleware 按路由模板记录请求数和耗时
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}

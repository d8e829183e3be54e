package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"blogdeck/cmd/internal/logger"
)

// RequestLoggingMiddleware 는 요청 진입부터 응답까지 걸린 시간을 로깅한다.
// health/swagger 는 노이즈라 제외한다.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		if path == "/health" || strings.HasPrefix(path, "/swagger/") {
			return
		}

		logger.Log.Infof(
			"api_request method=%s path=%s status=%d duration_ms=%d",
			method,
			path,
			c.Writer.Status(),
			time.Since(start).Milliseconds(),
		)
	}
}

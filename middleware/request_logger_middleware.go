package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/irademos/ai-news-song/application/ports/outbound"
)

const RequestIDHeader = "X-Request-ID"

// RequestLoggerMiddleware tags every request with an ID and logs method,
// path, status and latency once the handler chain finishes.
func RequestLoggerMiddleware(logger outbound.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		logger.InfoWithFields("Request handled", map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		})
	}
}

package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/infrastructure/gin_interface/dto"
)

// RecoveryMiddleware converts a panic anywhere in a handler into a 500
// with the uniform error body instead of killing the process.
func RecoveryMiddleware(logger outbound.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorWithFields(fmt.Errorf("%v", r), "Panic in request handler", map[string]interface{}{
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   "internal server error",
					Details: fmt.Sprintf("%v", r),
				})
			}
		}()
		c.Next()
	}
}

package middleware

import (
	"estatedesk-backend/internal/errors"
	"estatedesk-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the top-level fallback: anything a handler pushed onto the
// gin error list is mapped to the taxonomy and rendered once.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			appErr := errors.MapError(err)

			logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, error=%s",
				c.Request.URL.Path,
				c.Request.Method,
				c.ClientIP(),
				appErr.TechnicalMessage)

			c.JSON(appErr.HTTPStatus, gin.H{
				"success": false,
				"error": gin.H{
					"message": appErr.UserMessage,
					"code":    appErr.Code,
				},
			})
		}
	}
}

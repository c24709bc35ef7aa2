package handlers

import (
	"net/http"
	"strconv"

	"estatedesk-backend/internal/errors"
	"estatedesk-backend/internal/middleware"
	"estatedesk-backend/internal/policy"
	"estatedesk-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps any error to the taxonomy and writes the standard
// failure envelope. Technical detail goes to the log, not the client.
func respondError(c *gin.Context, err error) {
	appErr := errors.MapError(err)
	logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, error=%s",
		c.Request.URL.Path, c.Request.Method, appErr.TechnicalMessage)

	c.JSON(appErr.HTTPStatus, gin.H{
		"success": false,
		"error": gin.H{
			"message": appErr.UserMessage,
			"code":    appErr.Code,
		},
	})
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// requirePrincipal fetches the principal set by the auth middleware; a
// missing principal means the route was wired without it.
func requirePrincipal(c *gin.Context) (policy.Principal, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   gin.H{"message": errors.MsgUnauthorized, "code": errors.ErrCodeUnauthorized},
		})
		return policy.Principal{}, false
	}
	return principal, true
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondError(c, errors.Validation("invalid id", err))
		return 0, false
	}
	return uint(id), true
}

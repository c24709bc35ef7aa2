package middleware

import (
	"net/http"

	"estatedesk-backend/internal/auth"
	"estatedesk-backend/internal/policy"
	"estatedesk-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthMiddleware validates the bearer token and loads the principal. A token
// whose user has since been deleted is rejected the same way as an invalid
// one; the message never says which check failed.
func AuthMiddleware(secret string, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c)
			return
		}

		const prefix = "Bearer "
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			unauthorized(c)
			return
		}

		claims, err := auth.ValidateJWT(header[len(prefix):], secret)
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			unauthorized(c)
			return
		}

		c.Set(principalKey, policy.Principal{ID: user.ID, Role: user.Role})
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"message": "authentication required", "code": "UNAUTHORIZED"},
	})
	c.Abort()
}

// GetPrincipal returns the authenticated principal set by AuthMiddleware.
func GetPrincipal(c *gin.Context) (policy.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return policy.Principal{}, false
	}
	p, ok := v.(policy.Principal)
	return p, ok
}

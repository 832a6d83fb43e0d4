package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ijas1024/spoto-turf-booker-backend/internal/domain"
	"github.com/ijas1024/spoto-turf-booker-backend/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has the specified role
func RequireRole(requiredRole domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != string(requiredRole) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// OwnerOnly middleware requires the turf owner role
func OwnerOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleOwner)
}

// AdminOnly middleware requires admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

package middlewares

import (
	"net/http"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/service"

	"github.com/gin-gonic/gin"
)

// RequirePerm guards a route on a (module, action) position permission.
// Denial is always an explicit 403, never an empty result.
func RequirePerm(module, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := c.Get("user_id")
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			c.Abort()
			return
		}

		perms := service.NewPermissions(config.DB)
		allowed, err := perms.HasPermission(uid.(uint), module, action)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Permission lookup failed"})
			c.Abort()
			return
		}
		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminRole is the legacy guard: flat role field, admin only.
func RequireAdminRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

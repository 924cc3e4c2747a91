package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/types"
)

// RequireRole gates a route on the caller's role. Admins pass every gate.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		if claims.Role == models.RoleAdmin {
			c.Next()
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

func Admin() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

func Reviewer() gin.HandlerFunc {
	return RequireRole(models.RoleReviewer)
}

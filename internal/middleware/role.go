package middleware

import (
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole lets the request through when the authenticated staff member
// holds one of the given roles. It must run after OAuth2Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID, exists := c.Get(StaffIDKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "Staff member not authenticated"))
			return
		}

		role := c.GetString(StaffRoleKey)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "Role not found in token"))
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "Insufficient permissions",
			map[string]interface{}{
				"required_roles": strings.Join(roles, ","),
				"staff_role":     role,
				"staff_id":       staffID,
			}))
	}
}

// internal/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jyotsnadesigns/storefront-backend/internal/utils"
)

// AdminRequired guards a dashboard area. The request must carry a
// bearer capability token issued for exactly that area and still within
// its validity window.
func AdminRequired(area string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateAdminToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if claims.Area != area {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Access denied for this area",
			})
			c.Abort()
			return
		}

		c.Set("admin_area", claims.Area)
		c.Next()
	}
}

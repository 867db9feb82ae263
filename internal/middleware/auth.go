package middleware

import (
	"net/http"
	"strings"

	jwtsvc "beautystudio/internal/pkg/jwt"
	"beautystudio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminAuth gates the admin rule-editing endpoints. Tokens are minted
// out-of-band (cmd/admintoken); there is no login flow in this service.
func AdminAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}
		if claims.Role != "admin" {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin role required")
			c.Abort()
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}

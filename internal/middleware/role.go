package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route to the listed roles. It runs after
// AuthMiddleware, which stores the token's role in the context.
func RequireRole(allowed ...string) gin.HandlerFunc {
	roles := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		roles[r] = struct{}{}
	}

	return func(c *gin.Context) {
		value, exists := c.Get("userRole")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role missing"})
			return
		}

		role, _ := value.(string)
		if _, ok := roles[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}

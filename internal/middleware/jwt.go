package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework

	"inventory_api/internal/auth"
)

// JWTAuthMiddleware rejects requests that do not carry a valid bearer token
// and stores the resolved user in the request context. Resolution happens
// before the handler runs, so a rejected request never touches storage.
func JWTAuthMiddleware(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := svc.ResolveIdentity(c.Request.Context(), tokenStr)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set("user", user)      // Store resolved user in context
		c.Set("userID", user.ID) // Store userID in context
		c.Next()                 // Proceed to the next handler
	}
}

package delivery

import (
	"net/http"

	"task-manager-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid access token and
// stores the verified identity in the request context. Clients send the
// raw token in the Authorization header, with no scheme prefix.
func AuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":      false,
				"message":      "required authorization token",
				"errorDetails": nil,
			})
			return
		}

		claims, ok := tokens.Verify(raw)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":      false,
				"message":      "authorization failed, invalid or expired token",
				"errorDetails": nil,
			})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}

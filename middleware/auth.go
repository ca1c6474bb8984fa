package middleware

import (
	"net/http"
	"strings"

	"github.com/Sridhar1233sri/consultancy/utils"

	"github.com/gin-gonic/gin"
)

// UserEmailKey is the context key under which the authenticated caller's
// email is stored.
const UserEmailKey = "userEmail"

// JWTAuthMiddleware validates the bearer token and stores the caller's
// email in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		email, err := utils.ExtractSubjectFromToken(tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(UserEmailKey, email)
		c.Next()
	}
}

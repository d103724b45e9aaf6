package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fairsplit/fairsplit-backend/auth"
)

// UserIDKey is the gin context key under which the authenticated caller's
// user ID is stored.
const UserIDKey = "user_id"

// AuthRequired validates the Bearer token and injects the caller's identity
// into the request context. Handlers read it via CallerID.
func AuthRequired(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := jwtManager.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// CallerID returns the authenticated user's ID from the request context.
func CallerID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

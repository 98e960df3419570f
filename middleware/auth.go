package middleware

import (
	"net/http"
	"strings"

	"shootflow/models"
	"shootflow/utils"

	"github.com/gin-gonic/gin"
)

const authContextKey = "authContext"

// AuthMiddleware validates the bearer token and places an explicit
// AuthContext in the request context. Transition logic downstream reads the
// session from this one injected value, never from ambient globals.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sub, rawRole, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		role, err := models.ParseRole(rawRole)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unknown role"})
			return
		}

		c.Set(authContextKey, models.AuthContext{
			UserID: sub,
			Role:   role,
			Token:  tokenString,
		})
		c.Next()
	}
}

// RequireRoles restricts a route group to the given roles. Controls the
// caller may not use are also hidden by the board; this is the backstop.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := GetAuthContext(c)
		for _, r := range roles {
			if auth.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this action"})
	}
}

// GetAuthContext retrieves the AuthContext set by AuthMiddleware.
func GetAuthContext(c *gin.Context) models.AuthContext {
	if v, exists := c.Get(authContextKey); exists {
		if auth, ok := v.(models.AuthContext); ok {
			return auth
		}
	}
	return models.AuthContext{}
}

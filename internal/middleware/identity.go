package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the caller's user ID in the context.
const userIDKey = contextKey("userID")

// DefaultUserID is attributed when the caller supplies no identity.
// Authentication belongs to the surrounding application; this middleware only
// threads whatever identity it was handed into audit fields.
const DefaultUserID = "local"

// IdentityMiddleware reads the caller identity from the X-User-ID header and
// stores it in the request context for audit attribution.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = DefaultUserID
		}
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetUserIDFromContext retrieves the caller's user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

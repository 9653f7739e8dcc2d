package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user ID. It checks the Gin
// context map first, then the standard request context where AuthMiddleware
// places it.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		if ctxVal := c.Request.Context().Value(userIDKey); ctxVal != nil {
			if userID, ok := ctxVal.(string); ok {
				return userID, true
			}
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

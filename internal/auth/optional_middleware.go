package auth

import (
	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware inspects for a session and sets the user if present and valid,
// but does not fail if the session is missing, invalid or cannot be loaded.
func OptionalAuthMiddleware(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessionUser(c, users)
		if err != nil {
			_ = c.Error(err)
		}
		if user != nil {
			setUser(c, user)
		}
		c.Next()
	}
}

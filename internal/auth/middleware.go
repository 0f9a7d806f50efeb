package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid session. The session only names a user;
// the user itself is loaded fresh from the store for every request.
func AuthMiddleware(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessionUser(c, users)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}

		setUser(c, user)
		c.Next()
	}
}

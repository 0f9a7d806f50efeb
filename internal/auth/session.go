package auth

import (
	"context"
	"net/http"
	"strings"

	"flappypro/backend/internal/config"
	"flappypro/backend/internal/models"
	"flappypro/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie carries the session token for browser clients.
	SessionCookie = "session"

	userIDKey = "userID"
	userKey   = "user"
)

// UserLookup loads the user a session points at.
type UserLookup interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// StartSession issues a session token for user and sets it as an HttpOnly
// cookie. The token is returned for clients that prefer the Authorization
// header.
func StartSession(c *gin.Context, user *models.User) (string, error) {
	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		return "", err
	}
	maxAge := int(config.AppConfig.SessionTTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, maxAge, "/", "", false, true)
	return token, nil
}

// EndSession clears the session cookie.
func EndSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// tokenFromRequest reads a bearer token, falling back to the session cookie.
func tokenFromRequest(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return token
}

// sessionUser resolves the request's session to a user re-read from the
// store. A nil user with a nil error means there is no valid session.
func sessionUser(c *gin.Context, users UserLookup) (*models.User, error) {
	token := tokenFromRequest(c)
	if token == "" {
		return nil, nil
	}
	userID, err := jwt.ParseToken(token)
	if err != nil {
		return nil, nil
	}
	return users.GetUserByID(c.Request.Context(), userID)
}

// CurrentUser returns the user loaded by AuthMiddleware or
// OptionalAuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

func setUser(c *gin.Context, user *models.User) {
	c.Set(userIDKey, user.ID)
	c.Set(userKey, user)
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/services"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session"

// userIDKey is the context key under which the authenticated user ID is set.
const userIDKey = "userID"

// SetSessionCookie hands the session token to the client in an HttpOnly
// cookie.
func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", secure, true)
}

// ClearSessionCookie removes the session cookie from the client.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}

// SessionAuth gates protected routes. A request without a valid session is
// redirected to the login page, never served protected content. The session's
// owner must still exist; a session left behind by a removed account is
// treated as stale. On success the owning user ID is placed in the request
// context.
func SessionAuth(sessions services.SessionServicer, users services.UserServicer, cookieSecure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		userID, err := sessions.CurrentUser(token)
		if err != nil {
			// Stale or revoked token: drop the cookie before bouncing.
			ClearSessionCookie(c, cookieSecure)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if _, err := users.GetUserByID(userID); err != nil {
			ClearSessionCookie(c, cookieSecure)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

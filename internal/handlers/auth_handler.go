package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/middleware"
	"spendtrack/internal/services"
)

// AuthHandler handles signup, login, and logout.
type AuthHandler struct {
	users        services.UserServicer
	sessions     services.SessionServicer
	audit        services.AuditServicer
	cookieMaxAge int
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler. sessionTTL controls the cookie
// lifetime and must match the session service's TTL.
func NewAuthHandler(users services.UserServicer, sessions services.SessionServicer, audit services.AuditServicer, sessionTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		users:        users,
		sessions:     sessions,
		audit:        audit,
		cookieMaxAge: int(sessionTTL.Seconds()),
		cookieSecure: cookieSecure,
	}
}

// SignupRequest represents the signup form payload.
type SignupRequest struct {
	Username string `form:"username" binding:"required,max=100"`
	Password string `form:"password" binding:"required,max=128"`
}

// LoginRequest represents the login form payload.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// SignupForm describes the signup form. Rendering is left to the client.
func (h *AuthHandler) SignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"action": "/signup",
		"fields": []string{"username", "password"},
	})
}

// Signup handles the signup form submission and redirects to the login page
// on success.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.users.CreateUser(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.audit.Log(user.ID, "user.signup", "user", user.ID, c.ClientIP(), nil)
	c.Redirect(http.StatusFound, "/login")
}

// LoginForm describes the login form.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"action": "/login",
		"fields": []string{"username", "password"},
	})
}

// Login verifies credentials, starts a session, and redirects to the
// dashboard. Any failure yields the same plain-text response so the caller
// cannot tell a bad username from a bad password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusUnauthorized, "Invalid login")
		return
	}

	user, err := h.users.GetUserByUsername(req.Username)
	if err != nil || !h.users.VerifyPassword(user, req.Password) {
		c.String(http.StatusUnauthorized, "Invalid login")
		return
	}

	token, err := h.sessions.StartSession(user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	middleware.SetSessionCookie(c, token, h.cookieMaxAge, h.cookieSecure)
	h.audit.Log(user.ID, "user.login", "user", user.ID, c.ClientIP(), nil)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout invalidates the current session, clears the cookie, and redirects
// to the login page. Logging out without a session is harmless.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil && token != "" {
		if err := h.sessions.EndSession(token); err != nil {
			respondWithError(c, err)
			return
		}
	}

	middleware.ClearSessionCookie(c, h.cookieSecure)
	c.Redirect(http.StatusFound, "/login")
}

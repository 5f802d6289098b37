package web

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CSRF token transport
const (
	CSRFFormField = "csrf_token"
	CSRFHeader    = "X-CSRF-Token"
)

// CookieSettings describe the session cookie
type CookieSettings struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// SessionCookie writes sessions to the response cookie
type SessionCookie struct {
	service  sessions.SessionService
	settings CookieSettings
}

// NewSessionCookie creates a SessionCookie
func NewSessionCookie(service sessions.SessionService, settings CookieSettings) *SessionCookie {
	return &SessionCookie{service: service, settings: settings}
}

// Write sets the cookie for session and makes it the session of the request
func (s *SessionCookie) Write(c *gin.Context, session *sessions.Session) error {
	token, err := s.service.Token(session)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.settings.Name, token, int(s.settings.MaxAge.Seconds()), "/", "", s.settings.Secure, true)
	c.Set(sessionKey, session)
	return nil
}

// Clear expires the session cookie in the browser
func (s *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.settings.Name, "", -1, "/", "", s.settings.Secure, true)
}

// SessionMiddleware resolves the session cookie and loads the logged in user.
// Requests without a live session stay anonymous and store nothing; invalid or
// expired cookies are cleared.
func SessionMiddleware(sessionService sessions.SessionService, authService users.AuthService, cookie *SessionCookie, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := c.Cookie(cookie.settings.Name)
		if err != nil || token == "" {
			c.Next()
			return
		}

		session, err := sessionService.Resolve(ctx, token)
		if err != nil {
			if isStaleSession(err) {
				cookie.Clear(c)
			} else {
				logger.Error("Failed to resolve session: ", err)
			}
			c.Next()
			return
		}
		c.Set(sessionKey, session)

		if session.IsAuthenticated() {
			user, err := authService.LoadUser(ctx, *session.UserID)
			switch {
			case err == nil:
				SetCurrentUser(c, user)
			case errors.Is(err, users.ErrUserNotFound):
			default:
				logger.Error("Failed to load user: ", err)
			}
		}

		c.Next()
	}
}

// StartSession starts an anonymous session for pages that render a form and
// therefore need a CSRF token.
func StartSession(sessionService sessions.SessionService, cookie *SessionCookie, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) != nil {
			c.Next()
			return
		}

		started, err := sessionService.Start(c.Request.Context())
		if err == nil {
			err = cookie.Write(c, started)
		}
		if err != nil {
			logger.Error("Failed to start session: ", err)
			RenderError(c, http.StatusInternalServerError, "session unavailable")
			c.Abort()
			return
		}
		c.Next()
	}
}

func isStaleSession(err error) bool {
	return errors.Is(err, sessions.ErrInvalidToken) ||
		errors.Is(err, sessions.ErrSessionNotFound) ||
		errors.Is(err, sessions.ErrSessionExpired)
}

// CSRFMiddleware rejects unsafe requests that do not echo the session CSRF token
func CSRFMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
			c.Next()
			return
		}

		token := c.GetHeader(CSRFHeader)
		if token == "" {
			token = c.PostForm(CSRFFormField)
		}

		session := CurrentSession(c)
		if session == nil || token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(session.CSRFToken)) != 1 {
			RenderError(c, http.StatusForbidden, "The CSRF token is missing or invalid.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireUser answers 403 unless a user is logged in
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			RenderError(c, http.StatusForbidden, "You do not have permission to access this page.")
			c.Abort()
			return
		}
		c.Next()
	}
}

package web

import (
	"net/http"

	"github.com/MGTheTrain/auth-admin/internal/api/web/view"
	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey = "auth_admin.session"
	userKey    = "auth_admin.user"
	siteKey    = "auth_admin.site"
)

// Site is the part of the layout that does not depend on the request.
type Site struct {
	AdminName string
	AdminPath string
}

// SiteMiddleware makes the site settings available to NewPage
func SiteMiddleware(site Site) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(siteKey, site)
		c.Next()
	}
}

// CurrentSession returns the session resolved for the request, or nil
func CurrentSession(c *gin.Context) *sessions.Session {
	if v, ok := c.Get(sessionKey); ok {
		if session, ok := v.(*sessions.Session); ok {
			return session
		}
	}
	return nil
}

// CurrentUser returns the logged in user, or nil for anonymous requests
func CurrentUser(c *gin.Context) *users.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*users.User); ok {
			return user
		}
	}
	return nil
}

// SetCurrentUser binds user to the request
func SetCurrentUser(c *gin.Context, user *users.User) {
	c.Set(userKey, user)
}

// NewPage builds the layout data of the current request
func NewPage(c *gin.Context, title string) view.Page {
	page := view.Page{
		Title: title,
		User:  CurrentUser(c),
	}
	if session := CurrentSession(c); session != nil {
		page.CSRFToken = session.CSRFToken
	}
	if v, ok := c.Get(siteKey); ok {
		if site, ok := v.(Site); ok {
			page.AdminName = site.AdminName
			page.AdminPath = site.AdminPath
		}
	}
	return page
}

// RenderError renders the error page with status
func RenderError(c *gin.Context, status int, message string) {
	c.HTML(status, view.TemplateError, view.ErrorPage{
		Page:    NewPage(c, http.StatusText(status)),
		Status:  status,
		Message: message,
	})
}

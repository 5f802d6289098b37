package web

import (
	"net/http"
	"time"

	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// APIBasePath is the prefix of the JSON API
const APIBasePath = "/api/v1"

// Services are the application services the routes depend on
type Services struct {
	Auth        users.AuthService
	Sessions    sessions.SessionService
	Houses      houses.HouseService
	Enrollments enrollments.EnrollmentService
}

// Settings configure the routes
type Settings struct {
	Cookie      CookieSettings
	Site        Site
	CORSOrigins []string
}

// Mounter registers routes below a group, e.g. the admin
type Mounter interface {
	Mount(group *gin.RouterGroup)
}

// SetupRoutes sets up the renderer, middleware and every route.
// The admin is mounted below settings.Site.AdminPath behind RequireUser.
func SetupRoutes(r *gin.Engine, services Services, settings Settings, admin Mounter, logger logger.Logger) error {
	renderer, err := NewRenderer()
	if err != nil {
		return err
	}
	r.HTMLRender = renderer

	apiHandler := NewAPIHandler()
	r.GET("/healthz", apiHandler.Health)

	cookie := NewSessionCookie(services.Sessions, settings.Cookie)
	siteMiddleware := SiteMiddleware(settings.Site)
	sessionMiddleware := SessionMiddleware(services.Sessions, services.Auth, cookie, logger)

	api := r.Group(APIBasePath)
	if len(settings.CORSOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:     settings.CORSOrigins,
			AllowMethods:     []string{"GET", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", CSRFHeader},
			ExposeHeaders:    []string{"Content-Length", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	api.OPTIONS("/session", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	api.GET("/session", siteMiddleware, sessionMiddleware, apiHandler.Session)

	pages := r.Group("/", siteMiddleware, sessionMiddleware, CSRFMiddleware())

	pageHandler := NewPageHandler(services.Houses, services.Enrollments, logger)
	pages.GET("/", pageHandler.Index)

	authHandler := NewAuthHandler(services.Auth, services.Sessions, cookie, logger)
	startSession := StartSession(services.Sessions, cookie, logger)
	pages.GET("/login/", startSession, authHandler.ShowLogin)
	pages.POST("/login/", authHandler.Login)
	pages.GET("/register/", startSession, authHandler.ShowRegister)
	pages.POST("/register/", authHandler.Register)
	pages.GET("/logout/", authHandler.Logout)

	if admin != nil {
		admin.Mount(pages.Group(settings.Site.AdminPath, RequireUser()))
	}

	r.NoRoute(siteMiddleware, func(c *gin.Context) {
		RenderError(c, http.StatusNotFound, "The requested URL was not found on the server.")
	})
	return nil
}

// cmd/auth-admin-web/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MGTheTrain/auth-admin/internal/api/web"
	"github.com/MGTheTrain/auth-admin/internal/api/web/admin"
	"github.com/MGTheTrain/auth-admin/internal/app"
	"github.com/MGTheTrain/auth-admin/internal/domain/courses"
	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/persistence"
	"github.com/MGTheTrain/auth-admin/internal/pkg/config"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const tokenIssuer = "auth-admin"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/web-app.yaml"
	}

	webConfig, err := config.InitializeWebConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&webConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize application dependencies
	deps, err := initializeDependencies(ctx, webConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	go app.RunSessionJanitor(ctx, deps.services.sessions, webConfig.Session.JanitorInterval, log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(webConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	hasher   users.PasswordHasher
	services *appServices
}

type appServices struct {
	auth        users.AuthService
	sessions    sessions.SessionService
	houses      houses.HouseService
	courses     courses.CourseService
	enrollments enrollments.EnrollmentService
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.WebConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	hasher, err := cryptography.NewBcryptHasher(0)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	signer, err := cryptography.NewJWTSigner(cfg.Session.SecretKey, tokenIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create token signer: %w", err)
	}

	services, err := initializeApplicationServices(db, hasher, signer, cfg.Session, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		hasher:   hasher,
		services: services,
	}, nil
}

// initializeApplicationServices sets up repositories and the services built on them
func initializeApplicationServices(
	db *gorm.DB,
	hasher users.PasswordHasher,
	signer sessions.TokenSigner,
	sessionSettings config.SessionSettings,
	log logger.Logger,
) (*appServices, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	houseRepo, err := persistence.NewGormHouseRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create house repository: %w", err)
	}
	courseRepo, err := persistence.NewGormCourseRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create course repository: %w", err)
	}
	enrollmentRepo, err := persistence.NewGormEnrollmentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrollment repository: %w", err)
	}
	sessionRepo, err := persistence.NewGormSessionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	authService, err := app.NewAuthService(userRepo, hasher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	sessionService, err := app.NewSessionService(sessionRepo, signer, sessionSettings.MaxAge, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}
	houseService, err := app.NewHouseService(houseRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create house service: %w", err)
	}
	courseService, err := app.NewCourseService(courseRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create course service: %w", err)
	}
	enrollmentService, err := app.NewEnrollmentService(enrollmentRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrollment service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		auth:        authService,
		sessions:    sessionService,
		houses:      houseService,
		courses:     courseService,
		enrollments: enrollmentService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.WebConfig, deps *appDependencies, log logger.Logger) error {
	r := gin.Default()

	adminPath := "/admin"
	adm := admin.New(admin.Options{Name: cfg.Admin.Name, PageSize: cfg.Admin.PageSize}, log)
	if err := admin.RegisterDefaultViews(adm, deps.db, deps.hasher); err != nil {
		return fmt.Errorf("failed to register admin views: %w", err)
	}

	err := web.SetupRoutes(r, web.Services{
		Auth:        deps.services.auth,
		Sessions:    deps.services.sessions,
		Houses:      deps.services.houses,
		Enrollments: deps.services.enrollments,
	}, web.Settings{
		Cookie: web.CookieSettings{
			Name:   cfg.Session.CookieName,
			MaxAge: cfg.Session.MaxAge,
			Secure: cfg.Session.Secure,
		},
		Site:        web.Site{AdminName: cfg.Admin.Name, AdminPath: adminPath},
		CORSOrigins: cfg.CORS.AllowOrigins,
	}, adm, log)
	if err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

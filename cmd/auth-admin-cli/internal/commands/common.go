package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/MGTheTrain/auth-admin/internal/app"
	"github.com/MGTheTrain/auth-admin/internal/domain/courses"
	"github.com/MGTheTrain/auth-admin/internal/domain/enrollments"
	"github.com/MGTheTrain/auth-admin/internal/domain/houses"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/auth-admin/internal/infrastructure/persistence"
	"github.com/MGTheTrain/auth-admin/internal/pkg/config"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// DefaultConfigPath is used when neither --config nor CONFIG_PATH is set
const DefaultConfigPath = "configs/web-app.yaml"

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// Environment bundles the database and the services the commands operate on
type Environment struct {
	DB          *gorm.DB
	Logger      logger.Logger
	Users       users.UserRepository
	Auth        users.AuthService
	UserService users.UserService
	Houses      houses.HouseService
	Courses     courses.CourseService
	Enrollments enrollments.EnrollmentService
}

// OpenEnvironment loads the configuration at path and connects to its database.
// The schema is not migrated.
func OpenEnvironment(ctx context.Context, path string) (*Environment, error) {
	cfg, err := config.InitializeCLIConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	env := &Environment{DB: db, Logger: log}
	if err := env.initServices(); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}
	return env, nil
}

func (env *Environment) initServices() error {
	hasher, err := cryptography.NewBcryptHasher(0)
	if err != nil {
		return fmt.Errorf("failed to create password hasher: %w", err)
	}

	userRepo, err := persistence.NewGormUserRepository(env.DB, env.Logger)
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}
	houseRepo, err := persistence.NewGormHouseRepository(env.DB, env.Logger)
	if err != nil {
		return fmt.Errorf("failed to create house repository: %w", err)
	}
	courseRepo, err := persistence.NewGormCourseRepository(env.DB, env.Logger)
	if err != nil {
		return fmt.Errorf("failed to create course repository: %w", err)
	}
	enrollmentRepo, err := persistence.NewGormEnrollmentRepository(env.DB, env.Logger)
	if err != nil {
		return fmt.Errorf("failed to create enrollment repository: %w", err)
	}

	env.Users = userRepo
	if env.Auth, err = app.NewAuthService(userRepo, hasher, env.Logger); err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}
	if env.UserService, err = app.NewUserService(userRepo, env.Logger); err != nil {
		return fmt.Errorf("failed to create user service: %w", err)
	}
	if env.Houses, err = app.NewHouseService(houseRepo, env.Logger); err != nil {
		return fmt.Errorf("failed to create house service: %w", err)
	}
	if env.Courses, err = app.NewCourseService(courseRepo, env.Logger); err != nil {
		return fmt.Errorf("failed to create course service: %w", err)
	}
	if env.Enrollments, err = app.NewEnrollmentService(enrollmentRepo, env.Logger); err != nil {
		return fmt.Errorf("failed to create enrollment service: %w", err)
	}
	return nil
}

// Close releases the database connection
func (env *Environment) Close() error {
	return persistence.CloseDB(env.DB)
}

// CommandHandler opens the environment before a command group runs and closes it afterwards.
type CommandHandler struct {
	configPath string
	env        *Environment
}

func (handler *CommandHandler) open(cmd *cobra.Command, _ []string) error {
	env, err := OpenEnvironment(cmd.Context(), handler.configPath)
	if err != nil {
		return err
	}
	handler.env = env
	return nil
}

func (handler *CommandHandler) close(_ *cobra.Command, _ []string) error {
	if handler.env == nil {
		return nil
	}
	err := handler.env.Close()
	handler.env = nil
	return err
}

// group creates a parent command whose sub-commands share the environment
func (handler *CommandHandler) group(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		PersistentPreRunE:  handler.open,
		PersistentPostRunE: handler.close,
	}
}

// InitCommands registers the --config flag and every command group
func InitCommands(rootCmd *cobra.Command) error {
	handler := &CommandHandler{}

	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = DefaultConfigPath
	}
	rootCmd.PersistentFlags().StringVar(&handler.configPath, "config", defaultPath, "Path to the YAML configuration file")

	InitMigrateCommands(rootCmd, handler)
	InitUserCommands(rootCmd, handler)
	InitHouseCommands(rootCmd, handler)
	InitCourseCommands(rootCmd, handler)
	InitEnrollmentCommands(rootCmd, handler)
	return nil
}

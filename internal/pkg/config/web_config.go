package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings,
// e.g. AUTH_ADMIN_PORT or AUTH_ADMIN_DATABASE_DSN.
const EnvPrefix = "AUTH_ADMIN"

// WebConfig holds the settings of the web application
type WebConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Session  SessionSettings  `mapstructure:"session"`
	CORS     CORSSettings     `mapstructure:"cors"`
	Admin    AdminSettings    `mapstructure:"admin"`
}

// Validate checks the web configuration including every nested section
func (c *WebConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for WebConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Session.Validate()
}

// CLIConfig holds the subset of settings needed by the command line tool
type CLIConfig struct {
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
}

// Validate checks the CLI configuration
func (c *CLIConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Logger.Validate()
}

// InitializeWebConfig reads the YAML file at path, applies environment
// overrides and secrets, and validates the result.
func InitializeWebConfig(path string) (*WebConfig, error) {
	var cfg WebConfig
	if err := load(path, &cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg.Session); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitializeCLIConfig reads the same YAML file as the web application but
// only requires the database and logger sections.
func InitializeCLIConfig(path string) (*CLIConfig, error) {
	var cfg CLIConfig
	if err := load(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func load(path string, target any) error {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(target); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "test.sqlite")
	v.SetDefault("database.name", "")
	v.SetDefault("database.echo", false)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("session.cookie_name", "session")
	v.SetDefault("session.max_age", "24h")
	v.SetDefault("session.secure", false)
	v.SetDefault("session.janitor_interval", "10m")
	v.SetDefault("cors.allow_origins", []string{})
	v.SetDefault("admin.name", "Auth")
	v.SetDefault("admin.page_size", 20)
}

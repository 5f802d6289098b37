package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// SessionSettings configures the login session cookie and its server-side lifetime.
// SecretKey never comes from the config file.
type SessionSettings struct {
	CookieName      string        `mapstructure:"cookie_name" validate:"required"`
	MaxAge          time.Duration `mapstructure:"max_age" validate:"required,min=1m"`
	Secure          bool          `mapstructure:"secure"`
	JanitorInterval time.Duration `mapstructure:"janitor_interval" validate:"required,min=1s"`
	SecretKey       string        `mapstructure:"-" env:"AUTH_ADMIN_SECRET_KEY" validate:"required,min=16"`
}

// Validate checks that all fields in SessionSettings are valid
func (s *SessionSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SessionSettings: %w", err)
	}

	return nil
}

// CORSSettings lists the origins allowed to call the JSON API with credentials.
type CORSSettings struct {
	AllowOrigins []string `mapstructure:"allow_origins" validate:"dive,url"`
}

// AdminSettings configures the administrative interface.
type AdminSettings struct {
	Name     string `mapstructure:"name" validate:"required"`
	PageSize int    `mapstructure:"page_size" validate:"min=1,max=500"`
}

//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "0123456789abcdef0123"

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "web-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeWebConfig_FromFile(t *testing.T) {
	t.Setenv("AUTH_ADMIN_SECRET_KEY", testSecretKey)

	path := writeConfigFile(t, `
port: "8080"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: debug
  log_type: console
session:
  cookie_name: auth_session
  max_age: 2h
  janitor_interval: 30s
cors:
  allow_origins:
    - http://localhost:3000
admin:
  name: Hogwarts
  page_size: 50
`)

	cfg, err := InitializeWebConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, "auth_session", cfg.Session.CookieName)
	assert.Equal(t, 2*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, 30*time.Second, cfg.Session.JanitorInterval)
	assert.Equal(t, testSecretKey, cfg.Session.SecretKey)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "Hogwarts", cfg.Admin.Name)
	assert.Equal(t, 50, cfg.Admin.PageSize)
}

func TestInitializeWebConfig_Defaults(t *testing.T) {
	t.Setenv("AUTH_ADMIN_SECRET_KEY", testSecretKey)

	cfg, err := InitializeWebConfig(writeConfigFile(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, "Auth", cfg.Admin.Name)
	assert.Equal(t, 20, cfg.Admin.PageSize)
}

func TestInitializeWebConfig_EnvOverride(t *testing.T) {
	t.Setenv("AUTH_ADMIN_SECRET_KEY", testSecretKey)
	t.Setenv("AUTH_ADMIN_PORT", "9090")

	cfg, err := InitializeWebConfig(writeConfigFile(t, "port: \"8080\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
}

func TestInitializeWebConfig_MissingSecret(t *testing.T) {
	t.Setenv("AUTH_ADMIN_SECRET_KEY", "")

	_, err := InitializeWebConfig(writeConfigFile(t, "{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SessionSettings")
}

func TestInitializeWebConfig_MissingFile(t *testing.T) {
	_, err := InitializeWebConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestInitializeCLIConfig_IgnoresSessionSecret(t *testing.T) {
	t.Setenv("AUTH_ADMIN_SECRET_KEY", "")

	cfg, err := InitializeCLIConfig(writeConfigFile(t, "database:\n  dsn: cli.sqlite\n"))
	require.NoError(t, err)

	assert.Equal(t, "cli.sqlite", cfg.Database.DSN)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
}

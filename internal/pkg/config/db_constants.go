package config

// Database type constants
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

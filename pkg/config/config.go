// pkg/config/config.go
package config

import "time"

// PoolConfig holds connection pool settings.
type PoolConfig struct {
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // e.g. "1h", "30m"
}

// DatabaseConfig holds connection settings for the target backend.
type DatabaseConfig struct {
	Dialect string     `mapstructure:"dialect" validate:"required"` // "sqlite", "mysql", "postgres", "sqlserver"
	DSN     string     `mapstructure:"dsn"     validate:"required"`
	Pool    PoolConfig `mapstructure:"pool"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // "text", "json"
}

// MigrationConfig holds migration runner settings.
type MigrationConfig struct {
	Manifest  string `mapstructure:"manifest"`  // path to the YAML model manifest
	TableName string `mapstructure:"tableName"` // migration history table
}

// Config aggregates all application settings.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Migration MigrationConfig `mapstructure:"migration"`
}

// NewDefaultConfig returns a configuration with default values. Dialect and
// DSN must be supplied by the user.
func NewDefaultConfig() Config {
	return Config{
		Database: DatabaseConfig{
			Pool: PoolConfig{
				MaxIdleConns:    5,
				MaxOpenConns:    10,
				ConnMaxLifetime: time.Hour,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Migration: MigrationConfig{
			Manifest:  "models.yaml",
			TableName: "schema_migrations",
		},
	}
}

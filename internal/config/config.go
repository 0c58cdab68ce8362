// Package config provides centralized configuration management for the
// import pipeline and the incident feeder. It loads configuration from
// environment variables with sensible defaults and validates all
// settings on startup to fail fast on misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Database DatabaseConfig
	Import   ImportConfig
	Feeder   FeederConfig
	Logging  LoggingConfig
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`

	// Schema is the schema namespace holding the mobility tables.
	// Must match the schema created by the migrations (default: gauteng)
	Schema string `env:"DB_SCHEMA" default:"gauteng"`

	// MaxConns is the maximum number of connections in the pool (default: 10)
	MaxConns int `env:"DB_MAX_CONNS" default:"10"`

	// MinConns is the minimum number of connections to keep open (default: 2)
	MinConns int `env:"DB_MIN_CONNS" default:"2"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// ImportConfig holds bulk-import settings.
type ImportConfig struct {
	// DataDir is the root directory holding the per-table CSV extracts.
	// Required by the importer; checked there rather than here so the
	// feeder can run without it.
	DataDir string `env:"DATA_DIR"`
}

// FeederConfig holds synthetic incident generator settings.
type FeederConfig struct {
	// TickInterval is how often a batch of incidents is inserted (default: 7s)
	TickInterval time.Duration `env:"FEEDER_TICK_INTERVAL" default:"7s"`

	// BatchMin is the minimum incidents created per tick (default: 1)
	BatchMin int `env:"FEEDER_BATCH_MIN" default:"1"`

	// BatchMax is the maximum incidents created per tick (default: 3)
	BatchMax int `env:"FEEDER_BATCH_MAX" default:"3"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

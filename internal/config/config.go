package config

import (
	"fmt"
	"regexp"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// tableNamePattern restricts STORE_TABLE to a plain SQL identifier; the
// table name is interpolated into query text and must never carry quoting
// or punctuation.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the memory dashboard service.
// Environment variables are automatically parsed from the MEMORY_DASHBOARD_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Store driver: postgres (default, reads the bot's table) or sqlite (local dev)
	DBDriver string `envconfig:"DB_DRIVER" default:"postgres"`

	// Postgres Configuration. The DSN points at the database the bot's
	// langgraph store writes to; this service never alters that schema.
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// SQLite Configuration (local development only)
	SQLitePath string `envconfig:"SQLITE_PATH" default:""`

	// Name of the table the bot's langgraph store writes to.
	StoreTable string `envconfig:"STORE_TABLE" default:"store"`

	// Health monitoring
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults validates the configured store driver and its settings.
func (c *Config) ResolveDefaults() error {
	switch c.DBDriver {
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the postgres driver")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.StoreTable == "" {
		c.StoreTable = "store"
	}
	if !tableNamePattern.MatchString(c.StoreTable) {
		return fmt.Errorf("STORE_TABLE is not a valid table name: %q", c.StoreTable)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with MEMORY_DASHBOARD_
// Example: MEMORY_DASHBOARD_HTTP_PORT, MEMORY_DASHBOARD_POSTGRES_DSN
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("MEMORY_DASHBOARD", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Str("environment", string(cfg.Environment)).
		Int("port", cfg.HTTPPort).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Str("sqlite_path", cfg.SQLitePath).
		Str("store_table", cfg.StoreTable).
		Msg("Configuration loaded")

	return &cfg, nil
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

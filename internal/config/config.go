package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is read from the environment, optionally seeded from .env files.
type Config struct {
	DatabaseURL      string        `env:"DATABASE_URL"`
	Driver           string        `env:"DB_DRIVER" envDefault:"postgres"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`
	Seed             int64         `env:"SEED_RANDOM" envDefault:"0"`
	StatementTimeout time.Duration `env:"STATEMENT_TIMEOUT" envDefault:"30s"`
}

// Load reads the given env files that exist and parses the environment into a Config.
func Load(files ...string) (*Config, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, fmt.Errorf("failed to load env files: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	if c.Driver != DriverPostgres && c.Driver != DriverSQLite {
		return fmt.Errorf("DB_DRIVER must be '%s' or '%s', got '%s'", DriverPostgres, DriverSQLite, c.Driver)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be 'console' or 'json', got '%s'", c.LogFormat)
	}
	if c.StatementTimeout < 0 {
		return fmt.Errorf("STATEMENT_TIMEOUT must be non-negative, got %s", c.StatementTimeout)
	}
	return nil
}

// RequireDatabase errors when no DATABASE_URL was configured.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL not set in environment or .env file")
	}
	return nil
}

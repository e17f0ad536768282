// Package config loads the CLI configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DatabaseConfig carries the connection string and pool policy.
type DatabaseConfig struct {
	URL             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// DSN returns the connection string for pgx.
func (d DatabaseConfig) DSN() string {
	return d.URL
}

type Config struct {
	Database DatabaseConfig
	DataDir  string
}

// Load reads configuration from the environment. A local .env file is
// honoured when present so the CLI can run outside a container. A missing
// DATABASE_URL is a startup precondition failure the command layer treats
// as fatal.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	return &Config{
		Database: DatabaseConfig{
			URL:             dbURL,
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 30 * time.Second,
			MaxConnIdleTime: 10 * time.Minute,
		},
		DataDir: "./data",
	}, nil
}

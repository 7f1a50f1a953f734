package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application. The core packages
// receive these as already-resolved values; nothing below re-reads the
// environment.
type Config struct {
	// Server configuration
	ServerHost string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8000"`

	// Database configuration
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"recipeshare"`
	DBSSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	// DatabaseURL overrides the individual DB_* fields when set.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// BackendURL is consumed by the client/UI side.
	BackendURL string `envconfig:"BACKEND_URL" default:"http://localhost:8000"`
}

// LoadConfig creates a new Config instance with values from the
// environment, honoring a .env file when one is present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; the environment may be set by the host.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN returns the keyword/value connection string used by the gorm
// postgres driver.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// URL returns the postgres:// connection URL used by the migrator.
func (c *Config) URL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

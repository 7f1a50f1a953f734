package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateConfig checks that the loaded configuration is usable before
// anything tries to connect with it.
func ValidateConfig(cfg *Config) error {
	var missing []string

	if cfg.ServerPort == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.BackendURL == "" {
		missing = append(missing, "BACKEND_URL")
	}

	// The DB_* fields only matter when no full URL is given.
	if cfg.DatabaseURL == "" {
		if cfg.DBHost == "" {
			missing = append(missing, "DB_HOST")
		}
		if cfg.DBPort == "" {
			missing = append(missing, "DB_PORT")
		}
		if cfg.DBUser == "" {
			missing = append(missing, "DB_USER")
		}
		if cfg.DBName == "" {
			missing = append(missing, "DB_NAME")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric, got %q", cfg.ServerPort)
	}
	if cfg.DatabaseURL == "" {
		if _, err := strconv.Atoi(cfg.DBPort); err != nil {
			return fmt.Errorf("DB_PORT must be numeric, got %q", cfg.DBPort)
		}
	}

	return nil
}

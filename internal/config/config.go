// Package config reads the runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	DBFile string

	// CORS
	CORSAllowOrigins string

	// Exchange rates
	OpenExchangeRatesAPIKey string

	// Debugging
	EnablePprof bool
}

// Load reads the configuration from the environment, filling in
// defaults for everything unset.
func Load() *Config {
	return &Config{
		Port:                    getEnv("PORT", "8080"),
		DBFile:                  getEnv("DB_FILE", "data/finance-buddy.db"),
		CORSAllowOrigins:        getEnv("CORS_ALLOW_ORIGINS", ""),
		OpenExchangeRatesAPIKey: getEnv("OPENEXCHANGERATES_API_KEY", ""),
		EnablePprof:             getEnvBool("ENABLE_PPROF", false),
	}
}

// Validate returns an error if the configuration cannot be used.
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	} else if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if c.DBFile == "" {
		return fmt.Errorf("database file path must not be empty")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

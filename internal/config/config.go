// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"streamvault/internal/constants"
)

const (
	defaultConfigFile   = "config.json"
	defaultDatabasePath = "./catalog.db"
)

// Config holds the application configuration.
// It supports loading from environment variables and an optional JSON file.
type Config struct {
	// TMDBAPIKey is the bearer credential for the catalog provider.
	TMDBAPIKey string `json:"TMDB_API_KEY"`

	// Language is the default locale sent with every catalog request.
	Language string `json:"LANGUAGE"`

	// Server settings
	Port string `json:"PORT"`

	// Storage settings
	DatabasePath string        `json:"DATABASE_PATH"`
	CacheSize    int           `json:"CACHE_SIZE"`
	CacheTTL     time.Duration `json:"-"`
}

// Load reads configuration from a .env file (when present), environment
// variables and an optional JSON file. Environment variables take
// precedence over file values. Returns an error when the configuration
// is invalid.
func Load() (*Config, error) {
	// Missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()

	cfg := &Config{
		Language:     constants.DefaultLanguage,
		Port:         constants.DefaultServerPort,
		DatabasePath: defaultDatabasePath,
		CacheSize:    constants.DefaultCacheSize,
		CacheTTL:     time.Duration(constants.DefaultCacheTTLHours) * time.Hour,
	}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() {
	if key := os.Getenv("TMDB_API_KEY"); key != "" {
		c.TMDBAPIKey = key
	}
	if lang := os.Getenv("LANGUAGE"); lang != "" {
		c.Language = lang
	}
	if port := os.Getenv("PORT"); port != "" {
		c.Port = port
	}
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		c.DatabasePath = path
	}
	if size := os.Getenv("CACHE_SIZE"); size != "" {
		if parsed, err := strconv.Atoi(size); err == nil && parsed > 0 {
			c.CacheSize = parsed
		}
	}
	if hours := os.Getenv("CACHE_TTL_HOURS"); hours != "" {
		if parsed, err := strconv.Atoi(hours); err == nil && parsed > 0 {
			c.CacheTTL = time.Duration(parsed) * time.Hour
		}
	}
}

// loadFromFile loads configuration from a JSON file.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

// Validate checks if the configuration is valid. The catalog credential
// is required: genre data cannot be loaded without it and the process
// refuses to start.
func (c *Config) Validate() error {
	if c.TMDBAPIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is not set")
	}
	if c.CacheSize <= 0 {
		c.CacheSize = constants.DefaultCacheSize
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Period table
	TableSource  string // builtin, file, database
	TablePath    string // YAML table file, used when TableSource is file
	DatabasePath string // Path to SQLite file, used when TableSource is database

	// Calendar
	Timezone        string // IANA zone used to decide what "today" is
	TermDatesPrefix string // command prefix for the upcoming-terms line

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	location *time.Location
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Table sources
const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourceDatabase = "database"
)

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	// This is a no-op in production where env vars are set directly
	_ = godotenv.Load()

	cfg := &Config{}

	// Server settings
	cfg.Port = getEnvInt("PORT", 8080)
	// Not plain ENV: POSIX shells export that as their startup file.
	cfg.Env = getEnv("UOYWEEK_ENV", EnvDevelopment)

	// Period table
	cfg.TableSource = getEnv("TABLE_SOURCE", SourceBuiltin)
	cfg.TablePath = getEnv("TABLE_PATH", "")
	cfg.DatabasePath = getEnv("DATABASE_PATH", "./data/uoyweek.db")

	// Calendar
	cfg.Timezone = getEnv("TIMEZONE", "Local")
	cfg.TermDatesPrefix = getEnv("TERMDATES_PREFIX", "!termdates.set")

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	// Validate port range
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	// Validate environment
	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("UOYWEEK_ENV must be one of: development, staging, production; got %q", c.Env))
	}

	// Validate table source and the path it needs
	switch c.TableSource {
	case SourceBuiltin:
		// Valid
	case SourceFile:
		if c.TablePath == "" {
			errs = append(errs, errors.New("TABLE_PATH is required when TABLE_SOURCE is file"))
		}
	case SourceDatabase:
		if c.DatabasePath == "" {
			errs = append(errs, errors.New("DATABASE_PATH is required when TABLE_SOURCE is database"))
		}
	default:
		errs = append(errs, fmt.Errorf("TABLE_SOURCE must be one of: builtin, file, database; got %q", c.TableSource))
	}

	// Validate timezone
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err))
	} else {
		c.location = loc
	}

	if c.TermDatesPrefix == "" {
		errs = append(errs, errors.New("TERMDATES_PREFIX must not be empty"))
	}

	// Validate log level
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	// Validate log format
	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Location returns the configured time zone, falling back to the local
// zone if the configuration was never validated.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// Today returns the calendar date of now in the configured time zone.
func (c *Config) Today(now time.Time) time.Time {
	y, m, d := now.In(c.Location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

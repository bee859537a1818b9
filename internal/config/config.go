package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ConfigSource indicates where a configuration value came from
type ConfigSource int

const (
	// SourceDefault indicates the value is the default
	SourceDefault ConfigSource = iota
	// SourceEnvVar indicates the value came from an environment variable
	SourceEnvVar
	// SourceConfigFile indicates the value came from a config file
	SourceConfigFile
)

// String returns a human-readable representation of the config source
func (s ConfigSource) String() string {
	switch s {
	case SourceEnvVar:
		return "env"
	case SourceConfigFile:
		return "file"
	default:
		return "default"
	}
}

// Config holds all application configuration for the mediatag binaries.
type Config struct {
	// Server configuration
	Port     string
	Env      string
	LogLevel string

	// CORS configuration
	CORSOrigins []string

	// Catalog store
	CatalogStore *DatabaseConfig

	// Release-group sync tool configuration (cmd/mediatag-groups)
	GroupSyncURL             string
	GroupSyncIntervalSeconds int
	GroupSyncMaxEditDistance int
	GroupSyncUsername        string
	GroupSyncPassword        string
	GroupSyncKey             string

	// Source tracking - maps config key to its source
	Sources map[string]ConfigSource
}

// Load reads configuration from environment variables with defaults
func Load() (*Config, error) {
	cfg := &Config{
		Sources: make(map[string]ConfigSource),
	}

	// Port - MEDIATAG_PORT takes precedence over PORT for backward compatibility
	cfg.Port = cfg.loadWithFallback("MEDIATAG_PORT", "PORT", "8080")

	// Environment
	cfg.Env = cfg.loadString("ENV", "development")

	// Log level
	cfg.LogLevel = cfg.loadString("MEDIATAG_LOG_LEVEL", "info")

	// CORS origins
	cfg.CORSOrigins = cfg.loadStringSlice("MEDIATAG_CORS_ORIGINS", "*")

	// Release-group catalog sync tool
	cfg.GroupSyncURL = cfg.loadString("MEDIATAG_GROUPSYNC_URL", "")
	cfg.GroupSyncIntervalSeconds = cfg.loadInt("MEDIATAG_GROUPSYNC_INTERVAL_SECONDS", 2)
	cfg.GroupSyncMaxEditDistance = cfg.loadInt("MEDIATAG_GROUPSYNC_MAX_EDIT_DISTANCE", 1)
	cfg.GroupSyncUsername = cfg.loadString("MEDIATAG_GROUPSYNC_USERNAME", "")
	cfg.GroupSyncPassword = cfg.loadString("MEDIATAG_GROUPSYNC_PASSWORD", "")
	cfg.GroupSyncKey = cfg.loadString("MEDIATAG_GROUPSYNC_KEY", "")

	// Load catalog store configuration
	dbCfg, err := LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog store config: %w", err)
	}
	cfg.CatalogStore = dbCfg

	return cfg, nil
}

// loadString loads a string value from env or uses default, tracking source
func (c *Config) loadString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		c.Sources[key] = SourceEnvVar
		return value
	}
	c.Sources[key] = SourceDefault
	return defaultValue
}

// loadWithFallback loads from primary env var, falls back to secondary, then default
func (c *Config) loadWithFallback(primary, fallback, defaultValue string) string {
	// Check primary first
	if value := os.Getenv(primary); value != "" {
		c.Sources[primary] = SourceEnvVar
		return value
	}
	// Check fallback
	if fallback != "" {
		if value := os.Getenv(fallback); value != "" {
			c.Sources[primary] = SourceEnvVar // Track under primary key
			return value
		}
	}
	// Use default
	c.Sources[primary] = SourceDefault
	return defaultValue
}

// loadStringSlice loads a comma-separated string slice from env or uses default
func (c *Config) loadStringSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value != "" {
		c.Sources[key] = SourceEnvVar
	} else {
		c.Sources[key] = SourceDefault
		value = defaultValue
	}
	return parseStringSlice(value)
}

// loadInt loads an integer value from env or uses default, tracking source
// If the env var is set but cannot be parsed, it logs a warning and uses the default
func (c *Config) loadInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			slog.Warn("invalid integer value for environment variable, using default",
				"key", key,
				"value", value,
				"default", defaultValue,
				"error", err.Error(),
			)
			c.Sources[key] = SourceDefault
			return defaultValue
		}
		c.Sources[key] = SourceEnvVar
		return intVal
	}
	c.Sources[key] = SourceDefault
	return defaultValue
}

// parseStringSlice parses a comma-separated string into a slice
func parseStringSlice(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// getEnvStringSliceOrDefault returns a string slice from env var or default
// This is a standalone helper function for use outside Config struct
func getEnvStringSliceOrDefault(key string, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return parseStringSlice(value)
}

// LogConfigSources logs which source each configuration value came from
func (c *Config) LogConfigSources() {
	slog.Info("configuration loaded",
		"MEDIATAG_PORT", c.Port,
		"MEDIATAG_PORT_source", c.Sources["MEDIATAG_PORT"].String(),
		"ENV", c.Env,
		"ENV_source", c.Sources["ENV"].String(),
		"MEDIATAG_LOG_LEVEL", c.LogLevel,
		"MEDIATAG_LOG_LEVEL_source", c.Sources["MEDIATAG_LOG_LEVEL"].String(),
		"MEDIATAG_CORS_ORIGINS", strings.Join(c.CORSOrigins, ","),
		"MEDIATAG_CORS_ORIGINS_source", c.Sources["MEDIATAG_CORS_ORIGINS"].String(),
		"MEDIATAG_GROUPSYNC_URL", c.GroupSyncURL,
		"MEDIATAG_GROUPSYNC_URL_source", c.Sources["MEDIATAG_GROUPSYNC_URL"].String(),
		"MEDIATAG_GROUPSYNC_INTERVAL_SECONDS", c.GroupSyncIntervalSeconds,
		"MEDIATAG_GROUPSYNC_INTERVAL_SECONDS_source", c.Sources["MEDIATAG_GROUPSYNC_INTERVAL_SECONDS"].String(),
		"MEDIATAG_GROUPSYNC_USERNAME", c.GroupSyncUsername,
		"MEDIATAG_GROUPSYNC_USERNAME_source", c.Sources["MEDIATAG_GROUPSYNC_USERNAME"].String(),
		"MEDIATAG_GROUPSYNC_PASSWORD", maskSecret(c.GroupSyncPassword),
		"MEDIATAG_GROUPSYNC_PASSWORD_source", c.Sources["MEDIATAG_GROUPSYNC_PASSWORD"].String(),
		"MEDIATAG_GROUPSYNC_KEY", maskSecret(c.GroupSyncKey),
		"MEDIATAG_GROUPSYNC_KEY_source", c.Sources["MEDIATAG_GROUPSYNC_KEY"].String(),
	)
}

// maskSecret masks sensitive values for safe logging
func maskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// GetPort returns the port as an integer
func (c *Config) GetPort() (int, error) {
	return strconv.Atoi(c.Port)
}

// GetAddress returns the full server address (e.g., ":3000")
func (c *Config) GetAddress() string {
	return ":" + c.Port
}

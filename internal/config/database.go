package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DatabaseConfig holds catalog-store-specific configuration. The store is a
// small SQLite overlay on top of the parser's built-in keyword table (see
// internal/catalogstore), so the knobs here favor a single lightly-loaded
// connection over a large pool.
type DatabaseConfig struct {
	// Path to the SQLite database file
	Path string

	// WAL mode settings
	WALEnabled    bool
	WALSyncMode   string // OFF, NORMAL, FULL
	WALCheckpoint int    // Number of frames before auto-checkpoint

	// Connection pool settings
	MaxOpenConns    int           // Maximum number of open connections
	MaxIdleConns    int           // Maximum number of idle connections
	ConnMaxLifetime time.Duration // Maximum lifetime of a connection
	ConnMaxIdleTime time.Duration // Maximum idle time of a connection

	// Additional settings
	BusyTimeout time.Duration // How long to wait when database is locked
	CacheSize   int           // Cache size in pages (negative = KB)
}

// LoadDatabaseConfig reads catalog store configuration from environment variables
func LoadDatabaseConfig() (*DatabaseConfig, error) {
	cfg := &DatabaseConfig{
		Path:            getEnvOrDefault("MEDIATAG_DB_PATH", "./data/catalog.db"),
		WALEnabled:      getEnvBoolOrDefault("MEDIATAG_DB_WAL_ENABLED", true),
		WALSyncMode:     getEnvOrDefault("MEDIATAG_DB_WAL_SYNC_MODE", "NORMAL"),
		WALCheckpoint:   getEnvIntOrDefault("MEDIATAG_DB_WAL_CHECKPOINT", 1000),
		MaxOpenConns:    getEnvIntOrDefault("MEDIATAG_DB_MAX_OPEN_CONNS", 5),
		MaxIdleConns:    getEnvIntOrDefault("MEDIATAG_DB_MAX_IDLE_CONNS", 2),
		ConnMaxLifetime: getEnvDurationOrDefault("MEDIATAG_DB_CONN_MAX_LIFETIME", 5*time.Minute),
		ConnMaxIdleTime: getEnvDurationOrDefault("MEDIATAG_DB_CONN_MAX_IDLE_TIME", 1*time.Minute),
		BusyTimeout:     getEnvDurationOrDefault("MEDIATAG_DB_BUSY_TIMEOUT", 5*time.Second),
		CacheSize:       getEnvIntOrDefault("MEDIATAG_DB_CACHE_SIZE", -16000), // 16MB
	}

	validSyncModes := map[string]bool{
		"OFF":    true,
		"NORMAL": true,
		"FULL":   true,
	}
	if !validSyncModes[cfg.WALSyncMode] {
		return nil, fmt.Errorf("invalid WAL sync mode: %s (valid: OFF, NORMAL, FULL)", cfg.WALSyncMode)
	}

	if cfg.MaxOpenConns < 1 {
		return nil, fmt.Errorf("max open connections must be at least 1, got: %d", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns < 0 {
		return nil, fmt.Errorf("max idle connections must be non-negative, got: %d", cfg.MaxIdleConns)
	}
	if cfg.MaxIdleConns > cfg.MaxOpenConns {
		return nil, fmt.Errorf("max idle connections (%d) cannot exceed max open connections (%d)", cfg.MaxIdleConns, cfg.MaxOpenConns)
	}

	return cfg, nil
}

// GetDatabaseDir returns the directory containing the database file
func (c *DatabaseConfig) GetDatabaseDir() string {
	return filepath.Dir(c.Path)
}

// GetConnectionString returns the SQLite connection string with parameters
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf("file:%s?cache=shared&mode=rwc", c.Path)
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

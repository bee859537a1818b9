package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NewFields(t *testing.T) {
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, e := range originalEnv {
			pair := splitEnvPair(e)
			if len(pair) == 2 {
				os.Setenv(pair[0], pair[1])
			}
		}
	}()

	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "loads catalog store path from MEDIATAG_DB_PATH",
			envVars: map[string]string{
				"MEDIATAG_DB_PATH": "/custom/catalog.db",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/custom/catalog.db", cfg.CatalogStore.Path)
			},
		},
		{
			name: "loads LogLevel from MEDIATAG_LOG_LEVEL",
			envVars: map[string]string{
				"MEDIATAG_LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
		{
			name: "loads CORSOrigins from MEDIATAG_CORS_ORIGINS",
			envVars: map[string]string{
				"MEDIATAG_CORS_ORIGINS": "http://localhost:3000,http://example.com",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"http://localhost:3000", "http://example.com"}, cfg.CORSOrigins)
			},
		},
		{
			name: "loads GroupSyncURL from MEDIATAG_GROUPSYNC_URL",
			envVars: map[string]string{
				"MEDIATAG_GROUPSYNC_URL": "https://example.com/groups",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://example.com/groups", cfg.GroupSyncURL)
			},
		},
		{
			name: "loads GroupSyncKey from MEDIATAG_GROUPSYNC_KEY",
			envVars: map[string]string{
				"MEDIATAG_GROUPSYNC_KEY": "secret-encryption-key",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "secret-encryption-key", cfg.GroupSyncKey)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoad_PortBackwardCompatibility(t *testing.T) {
	tests := []struct {
		name         string
		envVars      map[string]string
		expectedPort string
	}{
		{
			name:         "uses MEDIATAG_PORT when set",
			envVars:      map[string]string{"MEDIATAG_PORT": "9000"},
			expectedPort: "9000",
		},
		{
			name:         "falls back to PORT if MEDIATAG_PORT not set",
			envVars:      map[string]string{"PORT": "9001"},
			expectedPort: "9001",
		},
		{
			name:         "MEDIATAG_PORT takes precedence over PORT",
			envVars:      map[string]string{"MEDIATAG_PORT": "9002", "PORT": "9003"},
			expectedPort: "9002",
		},
		{
			name:         "uses default 8080 when neither is set",
			envVars:      map[string]string{},
			expectedPort: "8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPort, cfg.Port)
		})
	}
}

func TestGetEnvStringSliceOrDefault(t *testing.T) {
	tests := []struct {
		name         string
		envKey       string
		envValue     string
		defaultValue string
		expected     []string
	}{
		{
			name:         "parses comma-separated values",
			envKey:       "TEST_SLICE",
			envValue:     "a,b,c",
			defaultValue: "default",
			expected:     []string{"a", "b", "c"},
		},
		{
			name:         "trims whitespace from values",
			envKey:       "TEST_SLICE",
			envValue:     " a , b , c ",
			defaultValue: "default",
			expected:     []string{"a", "b", "c"},
		},
		{
			name:         "filters empty values",
			envKey:       "TEST_SLICE",
			envValue:     "a,,b,,,c",
			defaultValue: "default",
			expected:     []string{"a", "b", "c"},
		},
		{
			name:         "returns default when env not set",
			envKey:       "TEST_SLICE_UNSET",
			envValue:     "",
			defaultValue: "*",
			expected:     []string{"*"},
		},
		{
			name:         "handles single value",
			envKey:       "TEST_SLICE",
			envValue:     "single",
			defaultValue: "default",
			expected:     []string{"single"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			if tt.envValue != "" {
				os.Setenv(tt.envKey, tt.envValue)
			}

			result := getEnvStringSliceOrDefault(tt.envKey, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad_SourceTracking(t *testing.T) {
	tests := []struct {
		name           string
		envVars        map[string]string
		checkKey       string
		expectedSource ConfigSource
	}{
		{
			name:           "tracks env var source for MEDIATAG_PORT",
			envVars:        map[string]string{"MEDIATAG_PORT": "9000"},
			checkKey:       "MEDIATAG_PORT",
			expectedSource: SourceEnvVar,
		},
		{
			name:           "tracks default source when MEDIATAG_PORT not set",
			envVars:        map[string]string{},
			checkKey:       "MEDIATAG_PORT",
			expectedSource: SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSource, cfg.Sources[tt.checkKey])
		})
	}
}

func TestConfigSource_String(t *testing.T) {
	tests := []struct {
		source   ConfigSource
		expected string
	}{
		{SourceDefault, "default"},
		{SourceEnvVar, "env"},
		{SourceConfigFile, "file"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.source.String())
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "./data/catalog.db", cfg.CatalogStore.Path)
	assert.Empty(t, cfg.GroupSyncURL)
	assert.Empty(t, cfg.GroupSyncKey)
}

func TestValidate_Port(t *testing.T) {
	tests := []struct {
		name      string
		port      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid port 8080", port: "8080", wantError: false},
		{name: "valid port 1", port: "1", wantError: false},
		{name: "valid port 65535", port: "65535", wantError: false},
		{name: "invalid port 0", port: "0", wantError: true, errorMsg: "MEDIATAG_PORT"},
		{name: "invalid port 65536", port: "65536", wantError: true, errorMsg: "MEDIATAG_PORT"},
		{name: "invalid port non-numeric", port: "invalid", wantError: true, errorMsg: "MEDIATAG_PORT"},
		{name: "invalid port negative", port: "-1", wantError: true, errorMsg: "MEDIATAG_PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:     tt.port,
				LogLevel: "info",
				Sources:  make(map[string]ConfigSource),
			}

			err := cfg.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else if err != nil {
				assert.NotContains(t, err.Error(), "MEDIATAG_PORT")
			}
		})
	}
}

func TestValidate_LogLevel(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantError bool
	}{
		{name: "debug is valid", logLevel: "debug", wantError: false},
		{name: "info is valid", logLevel: "info", wantError: false},
		{name: "warn is valid", logLevel: "warn", wantError: false},
		{name: "error is valid", logLevel: "error", wantError: false},
		{name: "DEBUG uppercase is valid", logLevel: "DEBUG", wantError: false},
		{name: "invalid level", logLevel: "invalid", wantError: true},
		{name: "empty is invalid", logLevel: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Port:     "8080",
				LogLevel: tt.logLevel,
				Sources:  make(map[string]ConfigSource),
			}

			err := cfg.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "MEDIATAG_LOG_LEVEL")
			} else if err != nil {
				assert.NotContains(t, err.Error(), "MEDIATAG_LOG_LEVEL")
			}
		})
	}
}

func TestValidate_CatalogStoreDir(t *testing.T) {
	t.Run("creates directory if not exists", func(t *testing.T) {
		tempDir := t.TempDir()
		newDir := tempDir + "/new-catalog-dir"

		cfg := &Config{
			Port:     "8080",
			LogLevel: "info",
			CatalogStore: &DatabaseConfig{
				Path: newDir + "/catalog.db",
			},
			Sources: make(map[string]ConfigSource),
		}

		err := cfg.Validate()
		require.NoError(t, err)

		info, err := os.Stat(newDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		Port:     "invalid",
		LogLevel: "invalid",
		Sources:  make(map[string]ConfigSource),
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MEDIATAG_PORT")
	assert.Contains(t, err.Error(), "MEDIATAG_LOG_LEVEL")
}

func TestValidationError(t *testing.T) {
	err := ValidationError{
		Field:   "TEST_FIELD",
		Message: "test error message",
	}

	assert.Equal(t, "TEST_FIELD: test error message", err.Error())
}

func TestGroupSyncHelpers(t *testing.T) {
	t.Run("HasGroupSyncCredentials requires both username and password", func(t *testing.T) {
		cfg := &Config{GroupSyncUsername: "bot"}
		assert.False(t, cfg.HasGroupSyncCredentials())
		cfg.GroupSyncPassword = "secret"
		assert.True(t, cfg.HasGroupSyncCredentials())
	})

	t.Run("HasGroupSyncKey returns true when set", func(t *testing.T) {
		cfg := &Config{GroupSyncKey: "test-key"}
		assert.True(t, cfg.HasGroupSyncKey())
	})

	t.Run("HasGroupSyncKey returns false when empty", func(t *testing.T) {
		cfg := &Config{}
		assert.False(t, cfg.HasGroupSyncKey())
	})

	t.Run("GetGroupSyncURL returns the configured URL", func(t *testing.T) {
		cfg := &Config{GroupSyncURL: "https://example.com/groups"}
		assert.Equal(t, "https://example.com/groups", cfg.GetGroupSyncURL())
	})
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string returns not set", input: "", expected: "(not set)"},
		{name: "short string is fully masked", input: "short", expected: "****"},
		{name: "8 char string is fully masked", input: "12345678", expected: "****"},
		{name: "longer string shows first and last 4 chars", input: "abcd12345678efgh", expected: "abcd****efgh"},
		{name: "typical key is partially masked", input: "sk-1234567890abcdef", expected: "sk-1****cdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := maskSecret(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper function to split environment variable pair
func splitEnvPair(e string) []string {
	for i := 0; i < len(e); i++ {
		if e[i] == '=' {
			return []string{e[:i], e[i+1:]}
		}
	}
	return []string{e}
}

package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Save original environment
	originalEnv := make(map[string]string)
	envVars := []string{
		"PORT",
		"ENVIRONMENT",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"RATE_LIMIT_RPS",
		"RATE_LIMIT_BURST",
		"MAX_REQUEST_SIZE",
		"SLOW_REQUEST_MS",
	}

	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		os.Unsetenv(key)
	}

	// Restore environment after test
	defer func() {
		for key, value := range originalEnv {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			wantErr: false,
			check: func(config *Config) {
				if config.Port != "8081" {
					t.Errorf("Expected default port 8081, got %s", config.Port)
				}
				if config.Environment != "development" {
					t.Errorf("Expected default environment development, got %s", config.Environment)
				}
				if config.Log.Level != "info" {
					t.Errorf("Expected default log level info, got %s", config.Log.Level)
				}
				if config.Log.Format != "text" {
					t.Errorf("Expected default log format text, got %s", config.Log.Format)
				}
				if config.Server.RateLimitRPS != 100 {
					t.Errorf("Expected default rate limit 100, got %f", config.Server.RateLimitRPS)
				}
				if config.Server.RateLimitBurst != 200 {
					t.Errorf("Expected default burst 200, got %d", config.Server.RateLimitBurst)
				}
				if config.Server.MaxRequestSize != 1048576 {
					t.Errorf("Expected default max request size 1048576, got %d", config.Server.MaxRequestSize)
				}
				if config.Server.SlowRequestLimit != time.Second {
					t.Errorf("Expected default slow request limit 1s, got %v", config.Server.SlowRequestLimit)
				}
			},
		},
		{
			name: "custom configuration",
			envVars: map[string]string{
				"PORT":             "9090",
				"ENVIRONMENT":      "production",
				"LOG_LEVEL":        "debug",
				"LOG_FORMAT":       "json",
				"RATE_LIMIT_RPS":   "50",
				"RATE_LIMIT_BURST": "75",
				"MAX_REQUEST_SIZE": "2048",
				"SLOW_REQUEST_MS":  "250",
			},
			wantErr: false,
			check: func(config *Config) {
				if config.Port != "9090" {
					t.Errorf("Expected port 9090, got %s", config.Port)
				}
				if config.Environment != "production" {
					t.Errorf("Expected environment production, got %s", config.Environment)
				}
				if config.Log.Level != "debug" {
					t.Errorf("Expected log level debug, got %s", config.Log.Level)
				}
				if config.Log.Format != "json" {
					t.Errorf("Expected log format json, got %s", config.Log.Format)
				}
				if config.Server.RateLimitRPS != 50 {
					t.Errorf("Expected rate limit 50, got %f", config.Server.RateLimitRPS)
				}
				if config.Server.RateLimitBurst != 75 {
					t.Errorf("Expected burst 75, got %d", config.Server.RateLimitBurst)
				}
				if config.Server.MaxRequestSize != 2048 {
					t.Errorf("Expected max request size 2048, got %d", config.Server.MaxRequestSize)
				}
				if config.Server.SlowRequestLimit != 250*time.Millisecond {
					t.Errorf("Expected slow request limit 250ms, got %v", config.Server.SlowRequestLimit)
				}
			},
		},
		{
			name: "invalid environment",
			envVars: map[string]string{
				"ENVIRONMENT": "sandbox",
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL": "verbose",
			},
			wantErr: true,
		},
		{
			name: "invalid log format",
			envVars: map[string]string{
				"LOG_FORMAT": "xml",
			},
			wantErr: true,
		},
		{
			name: "invalid rate limit",
			envVars: map[string]string{
				"RATE_LIMIT_RPS": "-5",
			},
			wantErr: true,
		},
		{
			name: "invalid max request size",
			envVars: map[string]string{
				"MAX_REQUEST_SIZE": "0",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set environment variables
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			config, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if config == nil {
				t.Fatal("Config is nil")
			}

			if tt.check != nil {
				tt.check(config)
			}

			// Clean up environment variables
			for key := range tt.envVars {
				os.Unsetenv(key)
			}
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	os.Setenv("TEST_VAR", "test_value")
	defer os.Unsetenv("TEST_VAR")

	if GetEnv("TEST_VAR", "default") != "test_value" {
		t.Error("GetEnv should return environment value")
	}

	if GetEnv("NONEXISTENT_VAR", "default") != "default" {
		t.Error("GetEnv should return default for nonexistent var")
	}

	os.Setenv("TEST_INT_VAR", "42")
	defer os.Unsetenv("TEST_INT_VAR")

	if GetEnvAsInt("TEST_INT_VAR", 7) != 42 {
		t.Error("GetEnvAsInt should return parsed environment value")
	}

	if GetEnvAsInt("NONEXISTENT_VAR", 7) != 7 {
		t.Error("GetEnvAsInt should return default for nonexistent var")
	}

	os.Setenv("TEST_INT_VAR", "not-a-number")
	if GetEnvAsInt("TEST_INT_VAR", 7) != 7 {
		t.Error("GetEnvAsInt should return default for unparseable value")
	}

	os.Setenv("TEST_BOOL_VAR", "true")
	defer os.Unsetenv("TEST_BOOL_VAR")

	if GetEnvAsBool("TEST_BOOL_VAR", false) != true {
		t.Error("GetEnvAsBool should return parsed environment value")
	}

	if GetEnvAsBool("NONEXISTENT_VAR", true) != true {
		t.Error("GetEnvAsBool should return default for nonexistent var")
	}

	os.Setenv("TEST_BOOL_VAR", "maybe")
	if GetEnvAsBool("TEST_BOOL_VAR", false) != false {
		t.Error("GetEnvAsBool should return default for unparseable value")
	}
}

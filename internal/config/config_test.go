package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearEnv blanks every config-related environment variable for the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "ENVIRONMENT", "LOG_LEVEL", "APP_VERSION", "CLOUD_PROVIDER"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port, "Expected default port")
	assert.Equal(t, "development", cfg.Environment, "Expected default environment")
	assert.Equal(t, "info", cfg.LogLevel, "Expected default log level")
	assert.Equal(t, "1.0.0", cfg.Version, "Expected default version")
	assert.Equal(t, "unknown", cfg.CloudProvider, "Expected default cloud provider")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	tests := []struct {
		name     string
		envKey   string
		envValue string
		check    func(*Config) string
	}{
		{
			name:     "APP_VERSION overrides version",
			envKey:   "APP_VERSION",
			envValue: "2.3.4",
			check:    func(c *Config) string { return c.Version },
		},
		{
			name:     "ENVIRONMENT overrides environment",
			envKey:   "ENVIRONMENT",
			envValue: "staging",
			check:    func(c *Config) string { return c.Environment },
		},
		{
			name:     "CLOUD_PROVIDER overrides provider",
			envKey:   "CLOUD_PROVIDER",
			envValue: "aws",
			check:    func(c *Config) string { return c.CloudProvider },
		},
		{
			name:     "PORT overrides port",
			envKey:   "PORT",
			envValue: "9090",
			check:    func(c *Config) string { return c.Port },
		},
		{
			name:     "LOG_LEVEL overrides log level",
			envKey:   "LOG_LEVEL",
			envValue: "debug",
			check:    func(c *Config) string { return c.LogLevel },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.envKey, tt.envValue)

			cfg := Load()

			assert.Equal(t, tt.envValue, tt.check(cfg), "Expected env value to take effect")
		})
	}
}

type stubFlags struct {
	port        string
	environment string
	logLevel    string
}

func (f *stubFlags) GetPort() string        { return f.port }
func (f *stubFlags) GetEnvironment() string { return f.environment }
func (f *stubFlags) GetLogLevel() string    { return f.logLevel }

func TestLoadWithFlags_Precedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "staging")

	cfg := LoadWithFlags(&stubFlags{port: "7777"})

	// Flag beats env, env beats default, empty flag defers to env.
	assert.Equal(t, "7777", cfg.Port, "Expected flag to override env")
	assert.Equal(t, "staging", cfg.Environment, "Expected env to apply when flag is empty")
	assert.Equal(t, "info", cfg.LogLevel, "Expected default when neither flag nor env set")
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	content := []byte("server:\n  port: \"8081\"\n  log_level: warn\napp:\n  version: \"3.0.0\"\n  cloud_provider: gcp\n")
	err := os.MkdirAll(filepath.Join(dir, "configs"), 0755)
	assert.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), content, 0644)
	assert.NoError(t, err)
	oldWd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port, "Expected port from YAML")
	assert.Equal(t, "warn", cfg.LogLevel, "Expected log level from YAML")
	assert.Equal(t, "3.0.0", cfg.Version, "Expected version from YAML")
	assert.Equal(t, "gcp", cfg.CloudProvider, "Expected provider from YAML")
	assert.Equal(t, "development", cfg.Environment, "Expected default for field absent from YAML")

	// Env still beats YAML.
	t.Setenv("APP_VERSION", "4.0.0")
	cfg = Load()
	assert.Equal(t, "4.0.0", cfg.Version, "Expected env to override YAML")
}

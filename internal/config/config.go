package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load creates a new Config instance without command-line flag overrides.
// This is a convenience function that calls LoadWithFlags with nil flags,
// making it suitable for applications and tests that don't parse flags.
func Load() *Config {
	return LoadWithFlags(nil)
}

// Flags defines the interface for command-line flag access.
// It lets the config package read server flag values without depending
// on the flag parsing implementation in cmd/server.
type Flags interface {
	GetPort() string
	GetEnvironment() string
	GetLogLevel() string
}

// LoadWithFlags creates a new Config instance by loading configuration from
// the optional YAML file and applying environment variable and command-line
// flag overrides.
//
// Configuration precedence (highest to lowest):
//  1. Command-line flags (server settings only)
//  2. Environment variables
//  3. YAML configuration file (configs/config.yaml)
//  4. Default values
//
// Parameters:
//   - flgs: Command-line flags interface (can be nil)
//
// Returns a fully resolved Config instance ready for use.
func LoadWithFlags(flgs Flags) *Config {
	yamlConfig := loadFromYAML()

	port := getEnv("PORT", yamlConfig.Server.Port)
	if port == "" {
		port = DefaultPort
	}
	if flgs != nil && flgs.GetPort() != "" {
		port = flgs.GetPort()
	}

	environment := getEnv("ENVIRONMENT", yamlConfig.Server.Environment)
	if environment == "" {
		environment = DefaultEnvironment
	}
	if flgs != nil && flgs.GetEnvironment() != "" {
		environment = flgs.GetEnvironment()
	}

	logLevel := getEnv("LOG_LEVEL", yamlConfig.Server.LogLevel)
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}
	if flgs != nil && flgs.GetLogLevel() != "" {
		logLevel = flgs.GetLogLevel()
	}

	version := getEnv("APP_VERSION", yamlConfig.App.Version)
	if version == "" {
		version = DefaultVersion
	}

	cloudProvider := getEnv("CLOUD_PROVIDER", yamlConfig.App.CloudProvider)
	if cloudProvider == "" {
		cloudProvider = DefaultCloudProvider
	}

	return &Config{
		Port:          port,
		Environment:   environment,
		LogLevel:      logLevel,
		Version:       version,
		CloudProvider: cloudProvider,
	}
}

func loadFromYAML() *YAMLConfig {
	config := &YAMLConfig{}
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		return config
	}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return config
	}
	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

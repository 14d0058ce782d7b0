package config

// Config represents the main application configuration structure.
// It contains all settings for the MediaShare API server. The struct is
// built once at startup and treated as read-only afterwards; handlers
// receive it by injection rather than reading package globals.
type Config struct {
	// HTTP server port (e.g., "8000")
	Port string

	// Application environment (e.g., "development", "staging", "production")
	Environment string

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string

	// Application version reported by the API (e.g., "1.0.0")
	Version string

	// Free-text label identifying the hosting environment (e.g., "aws", "gcp")
	CloudProvider string
}

// ServerYAMLConfig represents server-related settings in the YAML file.
// Environment variables and command-line flags take precedence over these.
type ServerYAMLConfig struct {
	// HTTP server port (e.g., "8000")
	Port string `yaml:"port"`

	// Application environment (e.g., "development", "production")
	Environment string `yaml:"environment"`

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string `yaml:"log_level"`
}

// AppYAMLConfig represents application metadata settings in the YAML file.
type AppYAMLConfig struct {
	// Application version (e.g., "1.0.0")
	Version string `yaml:"version"`

	// Hosting environment label (e.g., "aws")
	CloudProvider string `yaml:"cloud_provider"`
}

// YAMLConfig represents the complete YAML configuration file structure.
type YAMLConfig struct {
	Server ServerYAMLConfig `yaml:"server"`
	App    AppYAMLConfig    `yaml:"app"`
}

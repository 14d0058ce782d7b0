package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/mediashare/mediashare-api/internal/config"
	"github.com/mediashare/mediashare-api/internal/version"
)

// Help and version text
const (
	AppName        = "MediaShare API"
	AppDescription = "Cloud-ready informational API with health checks and instance metadata"
)

// ServerFlags holds all command-line flags for the MediaShare API server.
// Flags are overrides: when a flag is left empty, the value comes from the
// environment, the YAML config file, or the built-in default.
type ServerFlags struct {
	// HTTP server port number
	Port string
	// Deployment environment (development/staging/production)
	Environment string
	// Logging verbosity level (debug/info/warn/error)
	LogLevel string

	// Show help information and exit
	Help bool
	// Show version information and exit
	Version bool
}

// parseFlags parses command-line flags and returns a ServerFlags struct.
// Flag defaults are empty so that unset flags do not shadow environment
// variables or YAML configuration.
func parseFlags() *ServerFlags {
	f := &ServerFlags{}

	flag.StringVar(&f.Port, "port", "",
		fmt.Sprintf("Server port number (default: %s)", config.DefaultPort))
	flag.StringVar(&f.Environment, "env", "",
		fmt.Sprintf("Deployment environment: %s, %s, %s (default: %s)",
			config.ValidEnvironmentDevelopment, config.ValidEnvironmentStaging,
			config.ValidEnvironmentProduction, config.DefaultEnvironment))
	flag.StringVar(&f.LogLevel, "log-level", "",
		fmt.Sprintf("Log level: %s, %s, %s, %s (default: %s)",
			config.ValidLogLevelDebug, config.ValidLogLevelInfo,
			config.ValidLogLevelWarn, config.ValidLogLevelError, config.DefaultLogLevel))

	flag.BoolVar(&f.Help, "help", false, "Show help information and exit")
	flag.BoolVar(&f.Help, "h", false, "Show help information and exit (short form)")
	flag.BoolVar(&f.Version, "version", false, "Show version information and exit")
	flag.BoolVar(&f.Version, "v", false, "Show version information and exit (short form)")

	flag.Parse()

	return f
}

// showHelp displays help information for the MediaShare API server.
func (f *ServerFlags) showHelp() {
	fmt.Printf("%s - %s\n", AppName, AppDescription)
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  mediashare-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("    -port string")
	fmt.Println("          Server port (default: 8000)")
	fmt.Println("    -env string")
	fmt.Println("          Environment: development, staging, production (default: development)")
	fmt.Println("    -log-level string")
	fmt.Println("          Log level: debug, info, warn, error (default: info)")
	fmt.Println("    -help, -h")
	fmt.Println("          Show this help information")
	fmt.Println("    -version, -v")
	fmt.Println("          Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT:")
	fmt.Println("  APP_VERSION      Application version reported by the API (default: 1.0.0)")
	fmt.Println("  ENVIRONMENT      Deployment environment (default: development)")
	fmt.Println("  CLOUD_PROVIDER   Hosting environment label (default: unknown)")
	fmt.Println("  PORT             Server port (default: 8000)")
	fmt.Println("  LOG_LEVEL        Log level (default: info)")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Start with default settings")
	fmt.Println("  mediashare-api")
	fmt.Println()
	fmt.Println("  # Start in production mode with custom log level")
	fmt.Println("  mediashare-api -env production -log-level warn")
	fmt.Println()
	fmt.Println("  # Start on custom port")
	fmt.Println("  mediashare-api -port 8080")
}

// showVersion displays version information for the MediaShare API server.
func (f *ServerFlags) showVersion() {
	fmt.Printf("%s %s\n", AppName, config.Load().Version)
	fmt.Printf("Build info: %s\n", version.GetBuildInfo())
}

// validate checks that all provided flag values are valid.
// Empty values are allowed; they mean "resolve from config".
// Returns an error with a descriptive message if any validation fails.
func (f *ServerFlags) validate() error {
	if f.Environment != "" {
		validEnvs := []string{
			config.ValidEnvironmentDevelopment,
			config.ValidEnvironmentStaging,
			config.ValidEnvironmentProduction,
		}
		valid := false
		for _, env := range validEnvs {
			if f.Environment == env {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid environment: %s (must be one of: %s)", f.Environment, strings.Join(validEnvs, ", "))
		}
	}

	if f.LogLevel != "" {
		validLevels := []string{
			config.ValidLogLevelDebug,
			config.ValidLogLevelInfo,
			config.ValidLogLevelWarn,
			config.ValidLogLevelError,
		}
		valid := false
		for _, level := range validLevels {
			if f.LogLevel == level {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid log level: %s (must be one of: %s)", f.LogLevel, strings.Join(validLevels, ", "))
		}
	}

	return nil
}

// Interface methods for config package
// These methods implement the config.Flags interface so the config package
// can read flag values without depending on the flag implementation.

// GetPort returns the configured server port number.
func (f *ServerFlags) GetPort() string {
	return f.Port
}

// GetEnvironment returns the configured deployment environment.
func (f *ServerFlags) GetEnvironment() string {
	return f.Environment
}

// GetLogLevel returns the configured logging verbosity level.
func (f *ServerFlags) GetLogLevel() string {
	return f.LogLevel
}

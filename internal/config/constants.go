package config

// Default configuration values
const (
	// DefaultPort is the default HTTP server port
	DefaultPort = "8000"

	// DefaultEnvironment is the default deployment environment
	DefaultEnvironment = "development"

	// DefaultLogLevel is the default logging level
	DefaultLogLevel = "info"

	// DefaultVersion is the version reported when APP_VERSION is unset
	DefaultVersion = "1.0.0"

	// DefaultCloudProvider is the provider label reported when CLOUD_PROVIDER is unset
	DefaultCloudProvider = "unknown"
)

// Valid environment values
const (
	ValidEnvironmentDevelopment = "development"
	ValidEnvironmentStaging     = "staging"
	ValidEnvironmentProduction  = "production"
)

// Valid log level values
const (
	ValidLogLevelDebug = "debug"
	ValidLogLevelInfo  = "info"
	ValidLogLevelWarn  = "warn"
	ValidLogLevelError = "error"
)

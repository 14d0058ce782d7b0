package logger

import (
	"github.com/mediashare/mediashare-api/internal/config"
)

// FromConfig derives a logger configuration from the application config.
// Production gets machine-readable JSON logs; everything else gets the
// console encoder.
func FromConfig(cfg *config.Config) *Config {
	loggerConfig := DefaultConfig()

	if cfg.LogLevel != "" {
		loggerConfig.Level = LogLevel(cfg.LogLevel)
	}

	if cfg.Environment == config.ValidEnvironmentProduction {
		loggerConfig.Format = "json"
	} else {
		loggerConfig.Format = "console"
	}

	return loggerConfig
}

// InitFromConfig initializes the global logger from the application config.
func InitFromConfig(cfg *config.Config) error {
	return Init(FromConfig(cfg))
}

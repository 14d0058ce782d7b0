package main

import (
	"log"
	"os"

	"github.com/mediashare/mediashare-api/internal/config"
	"github.com/mediashare/mediashare-api/internal/server"
	"github.com/mediashare/mediashare-api/pkg/logger"

	"github.com/joho/godotenv"
)

// main is the entry point for the MediaShare API server.
// It performs the following operations:
//  1. Parses command-line flags for server configuration
//  2. Loads environment variables from .env file if present
//  3. Resolves configuration (flags > env > YAML > defaults)
//  4. Initializes the HTTP server
//  5. Begins listening for HTTP requests
func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	flags := parseFlags()

	if flags.Help {
		flags.showHelp()
		os.Exit(0)
	}
	if flags.Version {
		flags.showVersion()
		os.Exit(0)
	}
	if err := flags.validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	cfg := config.LoadWithFlags(flags)

	// Create and start server
	srv := server.New(cfg)

	logger.Infof("Starting on port %s", cfg.Port)
	logger.Infof("Environment: %s", cfg.Environment)
	logger.Infof("Cloud provider: %s", cfg.CloudProvider)
	logger.Infof("Version: %s", cfg.Version)
	logger.Infof("Log level: %s", cfg.LogLevel)

	if err := srv.Start(); err != nil {
		logger.Fatalf("Server failed to start: %v", err)
	}
}

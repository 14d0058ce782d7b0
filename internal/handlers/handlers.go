package handlers

import (
	"time"

	"github.com/mediashare/mediashare-api/apis/health"
	"github.com/mediashare/mediashare-api/apis/metadata"
	"github.com/mediashare/mediashare-api/internal/config"
	"github.com/mediashare/mediashare-api/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all HTTP routes for the MediaShare API server.
// It registers each API package using the handler/RegisterRoutes pattern.
// This function should be called during server initialization.
func SetupRoutes(app *fiber.App, cfg *config.Config, startedAt time.Time) {
	// Register all APIs here - one line per API
	health.RegisterRoutes(app, health.NewHandler(cfg, startedAt))
	metadata.RegisterRoutes(app, metadata.NewHandler(cfg))
	metrics.RegisterRoutes(app)

	// Root endpoint
	app.Get("/", RootHandler(cfg))
}

// RootHandler returns the handler for the root endpoint ("/").
// It serves a static welcome payload pointing at the docs and health routes.
func RootHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to MediaShare API",
			"version": cfg.Version,
			"docs":    "/docs",
			"health":  "/health",
		})
	}
}

package health

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the health and readiness routes with the
// Fiber application.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	// Liveness endpoint
	app.Get("/health", handler.Health)

	// Readiness endpoint
	app.Get("/ready", handler.Ready)
}

package metadata

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the instance metadata route with the
// Fiber application.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/metadata", handler.Metadata)
}

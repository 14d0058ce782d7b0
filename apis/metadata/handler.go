package metadata

import (
	"fmt"
	"os"

	"github.com/mediashare/mediashare-api/internal/config"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the instance metadata endpoint.
type Handler struct {
	cfg *config.Config
}

// NewHandler creates a metadata Handler bound to the given configuration.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// Metadata handles instance metadata requests.
// Like the health check, the hostname is looked up per call so the
// response always names the machine actually serving the request.
func (h *Handler) Metadata(c *fiber.Ctx) error {
	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("resolve hostname: %w", err)
	}

	return c.JSON(MetadataResponse{
		Hostname:      hostname,
		Environment:   h.cfg.Environment,
		CloudProvider: h.cfg.CloudProvider,
		Version:       h.cfg.Version,
	})
}

package health

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/mediashare/mediashare-api/apis/common"
	"github.com/mediashare/mediashare-api/internal/config"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the health and readiness endpoints.
// It holds the read-only configuration and the process start time;
// everything else is computed fresh on each request.
type Handler struct {
	cfg       *config.Config
	startedAt time.Time
}

// NewHandler creates a health Handler bound to the given configuration
// and process start time.
func NewHandler(cfg *config.Config, startedAt time.Time) *Handler {
	return &Handler{
		cfg:       cfg,
		startedAt: startedAt,
	}
}

// Health handles health check requests and returns server status information.
// The hostname is resolved on every call rather than cached, so the response
// reflects runtime changes such as container rescheduling.
func (h *Handler) Health(c *fiber.Ctx) error {
	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("resolve hostname: %w", err)
	}

	uptime := time.Since(h.startedAt).Seconds()

	response := HealthResponse{
		Status:        "healthy",
		Timestamp:     common.Timestamp(),
		Hostname:      hostname,
		Environment:   h.cfg.Environment,
		CloudProvider: h.cfg.CloudProvider,
		Version:       h.cfg.Version,
		UptimeSeconds: math.Round(uptime*100) / 100,
	}

	return c.JSON(response)
}

// Ready handles readiness probe requests.
// The service has no warm-up phase or external dependencies, so it is
// ready as soon as it is listening.
func (h *Handler) Ready(c *fiber.Ctx) error {
	return c.JSON(ReadyResponse{Status: "ready"})
}

package server

import (
	"log"
	"time"

	"github.com/goccy/go-json"

	"github.com/mediashare/mediashare-api/apis/common"
	"github.com/mediashare/mediashare-api/internal/config"
	"github.com/mediashare/mediashare-api/internal/handlers"
	"github.com/mediashare/mediashare-api/pkg/logger"
	"github.com/mediashare/mediashare-api/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
)

// Server represents the HTTP server instance.
// It encapsulates the Fiber application and the read-only configuration
// for the MediaShare API.
type Server struct {
	// app is the Fiber HTTP application instance
	app *fiber.App

	// cfg contains the server configuration
	cfg *config.Config
}

// New creates and initializes a new Server instance with the provided
// configuration. It sets up the Fiber application with middleware and
// routes; the server is ready to start after this function returns.
func New(cfg *config.Config) *Server {
	// Initialize logger first
	if err := logger.InitFromConfig(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	return &Server{
		app: newApp(cfg),
		cfg: cfg,
	}
}

// newApp builds the Fiber application: JSON codec, error handler,
// middleware chain and all routes. The process start time is captured
// here, once, and injected into the health handler.
func newApp(cfg *config.Config) *fiber.App {
	startedAt := time.Now()

	app := fiber.New(fiber.Config{
		AppName:      "MediaShare API " + cfg.Version,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(metrics.Middleware())

	handlers.SetupRoutes(app, cfg, startedAt)

	return app
}

// errorHandler is the centralized error-to-response mapping for all routes.
// Router-generated errors (404, 405) keep their status code and text; any
// other error, including panics surfaced by the recover middleware, is
// collapsed into a 500 with the error message as detail. The process never
// crashes on a request error.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code == fiber.StatusInternalServerError {
		logger.Errorf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(common.ErrorResponse{
		Error:     utils.StatusMessage(code),
		Detail:    err.Error(),
		Timestamp: common.Timestamp(),
	})
}

// Start starts the HTTP server on the configured port, listening on all
// interfaces. Returns an error if the server fails to start.
func (s *Server) Start() error {
	return s.app.Listen(":" + s.cfg.Port)
}

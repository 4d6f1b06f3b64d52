package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/config"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/delivery/http/handler"
	"github.com/chronopilferer/Trendy-Trip-Algorithm/internal/delivery/http/middleware"
)

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server is the Fiber HTTP server for the planning API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	planHandler      *handler.PlanHandler
	itineraryHandler *handler.ItineraryHandler

	db    HealthChecker
	cache HealthChecker
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	planHandler *handler.PlanHandler,
	itineraryHandler *handler.ItineraryHandler,
	db HealthChecker,
	cache HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Trip Planner",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		planHandler:      planHandler,
		itineraryHandler: itineraryHandler,
		db:               db,
		cache:            cache,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", s.health)

	// Planning
	api.Post("/plan", s.planHandler.Plan)

	// Persisted itineraries
	api.Post("/itineraries", s.itineraryHandler.Create)
	api.Get("/itineraries", s.itineraryHandler.List)
	api.Get("/itineraries/:id", s.itineraryHandler.GetByID)
}

func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	checks := fiber.Map{}

	if s.db != nil {
		if err := s.db.Health(ctx); err != nil {
			status = "degraded"
			checks["database"] = err.Error()
		} else {
			checks["database"] = "ok"
		}
	}
	if s.cache != nil {
		if err := s.cache.Health(ctx); err != nil {
			status = "degraded"
			checks["cache"] = err.Error()
		} else {
			checks["cache"] = "ok"
		}
	}

	return c.JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// Start runs the HTTP server until Shutdown or a listener error.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown performs a graceful shutdown of the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}

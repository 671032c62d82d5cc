package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/accident-analytics/internal/config"
	"github.com/accident-analytics/internal/delivery/http/handler"
	"github.com/accident-analytics/internal/delivery/http/middleware"
)

// Server wraps the Fiber application and its route handlers.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	accidentHandler  *handler.AccidentHandler
	blackspotHandler *handler.BlackspotHandler
	statsHandler     *handler.StatsHandler
	trendsHandler    *handler.TrendsHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	accidentHandler *handler.AccidentHandler,
	blackspotHandler *handler.BlackspotHandler,
	statsHandler *handler.StatsHandler,
	trendsHandler *handler.TrendsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Accident Analytics",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		accidentHandler:  accidentHandler,
		blackspotHandler: blackspotHandler,
		statsHandler:     statsHandler,
		trendsHandler:    trendsHandler,
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
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Accident filtering
	api.Post("/accidents/filter", s.accidentHandler.Filter)

	// Blackspot clustering
	api.Post("/blackspots", s.blackspotHandler.Identify)

	// Statistics
	api.Post("/stats/summary", s.statsHandler.Summary)
	api.Post("/stats/risk", s.statsHandler.Risk)

	// Trends
	api.Post("/trends/temporal", s.trendsHandler.Temporal)
	api.Post("/trends/seasonal", s.trendsHandler.Seasonal)
	api.Post("/trends/yearly", s.trendsHandler.Yearly)
	api.Post("/trends/monthly", s.trendsHandler.Monthly)
}

// Start runs the HTTP server on the configured address.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown performs a graceful shutdown.
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

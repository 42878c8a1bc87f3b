package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gridlens/gridlens/internal/config"
	"github.com/gridlens/gridlens/internal/handlers"
	"github.com/gridlens/gridlens/internal/logging"
	"github.com/gridlens/gridlens/internal/middleware"
	"github.com/gridlens/gridlens/internal/services"
)

// Setup configures all routes and middlewares
func Setup(app *fiber.App, logger *logging.Logger, service *services.AnalysisService, cfg config.Config) *handlers.Handler {
	h := handlers.New(logger, service)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-API-Key,X-Request-ID",
	}))
	app.Use(logging.FiberMiddleware(logger))

	// Health check (no auth required)
	app.Get("/health", h.Health)

	// API key authentication middleware
	authMiddleware := middleware.APIKeyAuth(logger, cfg.Auth.APIKeys, cfg.Auth.Enabled)

	// API v1 routes (protected by API key)
	v1 := app.Group("/v1", authMiddleware)

	// Variable Management Routes
	v1.Post("/variables", h.UploadVariable)
	v1.Get("/variables", h.ListVariables)
	v1.Get("/variables/:name", h.GetVariable)
	v1.Delete("/variables/:name", h.DeleteVariable)

	// Analysis Routes
	v1.Post("/variables/:name/analyze", h.Analyze)

	// 404 handler
	app.Use(h.NotFound)

	return h
}

// New creates a new Fiber app with configuration
func New(logger *logging.Logger, service *services.AnalysisService, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "GridLens",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	Setup(app, logger, service, cfg)

	return app
}

// Package rest assembles the fiber application: middleware, health check and
// the versioned API.
package rest

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/handlers/rest/v1alpha1"
	"github.com/KirkDiggler/rpg-campaigns/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-campaigns/internal/pkg/logging"
)

// RequestIDHeader carries the request id on requests and responses
const RequestIDHeader = "X-Request-ID"

// Config holds what the app needs
type Config struct {
	Handler     *v1alpha1.Handler
	IDGenerator idgen.Generator

	// AllowOrigins is passed to the CORS middleware, "*" when empty
	AllowOrigins string
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Handler == nil {
		return errors.InvalidArgument("handler is required")
	}
	if c.IDGenerator == nil {
		c.IDGenerator = idgen.NewUUID("req")
	}
	if c.AllowOrigins == "" {
		c.AllowOrigins = "*"
	}
	return nil
}

// NewApp builds the fiber app with every route mounted
func NewApp(cfg *Config) (*fiber.App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               "rpg-campaigns",
		ErrorHandler:          v1alpha1.ToFiberError,
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New(requestid.Config{
		Header:    RequestIDHeader,
		Generator: cfg.IDGenerator.Generate,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + RequestIDHeader,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(requestLogger())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	cfg.Handler.RegisterRoutes(app.Group(v1alpha1.Prefix))

	return app, nil
}

// requestLogger logs one line per request and tags the request context with
// the request id so service logs can be correlated.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := c.GetRespHeader(RequestIDHeader)

		ctx := logging.WithRequestID(c.UserContext(), requestID)
		c.SetUserContext(ctx)

		err := c.Next()
		if err != nil {
			// run the error handler now so the logged status is the real one
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		level := slog.LevelInfo
		if status := c.Response().StatusCode(); status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= fiber.StatusBadRequest {
			level = slog.LevelWarn
		}

		slog.Log(ctx, level, "HTTP request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start))
		return nil
	}
}

package server

import (
	"errors"
	"fmt"
	"time"

	"teapot-fortune/core/logger"
	"teapot-fortune/core/middleware/limiter"
	"teapot-fortune/core/middleware/nocache"
	"teapot-fortune/core/middleware/rayid"
	"teapot-fortune/core/page"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"
)

// Addr returns the listen address on all interfaces.
func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// New builds the Fiber app with the shared middleware chain. Features are loaded
// onto the returned app by the caller.
func New(cfg Config, logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
		AppName:               "teapot-fortune",
		ErrorHandler:          errorHandler,
	})

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())

	// 2. Logging Middleware (Zap + RayID)
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		l := logger.WithRayID(logg, c)
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Info("Request handled",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	})

	// 3. Caching disabled at client and edge
	app.Use(nocache.New())

	// 4. Compression negotiated from Accept-Encoding
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))

	// 5. Worker pool
	app.Use(limiter.New(limiter.Config{
		Workers: cfg.WorkerCount(),
		Wait:    cfg.RequestTimeout(),
	}))

	return app
}

// errorHandler renders errors escaping the chain (e.g. a shed request) as HTML,
// so no response ever leaves as plain text.
func errorHandler(c *fiber.Ctx, err error) error {
	code, msg := fiber.StatusInternalServerError, fiber.ErrInternalServerError.Message
	var e *fiber.Error
	if errors.As(err, &e) {
		code, msg = e.Code, e.Message
	}

	c.Type("html", "utf-8")
	if code == fiber.StatusServiceUnavailable {
		return c.Status(code).Send(page.Unavailable)
	}
	return c.Status(code).Send(page.Render(msg))
}

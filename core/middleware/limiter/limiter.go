package limiter

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Config configures the worker pool.
type Config struct {
	// Workers is the number of requests handled at once.
	Workers int
	// Wait is how long a request may queue for a free worker before being shed.
	Wait time.Duration
}

// New returns a middleware that runs at most cfg.Workers handlers concurrently.
// Requests that cannot get a worker within cfg.Wait receive 503.
func New(cfg Config) fiber.Handler {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	slots := make(chan struct{}, cfg.Workers)

	return func(c *fiber.Ctx) error {
		select {
		case slots <- struct{}{}:
		default:
			timer := time.NewTimer(cfg.Wait)
			defer timer.Stop()

			select {
			case slots <- struct{}{}:
			case <-timer.C:
				return fiber.ErrServiceUnavailable
			}
		}
		defer func() { <-slots }()

		return c.Next()
	}
}

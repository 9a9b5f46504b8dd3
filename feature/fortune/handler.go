package fortune

import (
	"context"
	"time"

	"teapot-fortune/core/logger"
	"teapot-fortune/core/page"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves fortunes over HTTP.
type Handler struct {
	service *Service
	status  int
	timeout time.Duration
}

// NewHandler creates a new HTTP handler answering every request with status.
func NewHandler(service *Service, status int, timeout time.Duration) *Handler {
	return &Handler{service: service, status: status, timeout: timeout}
}

// RegisterRoutes registers the catch-all fortune route for every method and path.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(h.HandleFortune)
}

// HandleFortune writes a random entry as an HTML document with the configured status.
func (h *Handler) HandleFortune(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	c.Type("html", "utf-8")

	entry, err := h.service.Fortune(ctx)
	if err != nil {
		l.Error("Fortune selection failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).Send(page.Unavailable)
	}

	return c.Status(h.status).Send(Render(entry))
}

package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"urbanbean/internal/services"
)

type DiagnosticsHandler struct {
	Diag *services.DiagnosticsService
}

// GET /
func (h *DiagnosticsHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Urban Bean Coffee Roasters API running"})
}

// GET /test
func (h *DiagnosticsHandler) Test(c *fiber.Ctx) error {
	return c.JSON(h.Diag.Report(c.UserContext()))
}

// GET /healthz
func (h *DiagnosticsHandler) Healthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.Diag.Store.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "urbanbean/internal/log"
	"urbanbean/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

// POST /api/orders
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	raw, err := bindObject(c)
	if err != nil {
		return badBody(c, err)
	}
	r, err := h.Orders.Place(c.UserContext(), raw)
	if err != nil {
		return respondError(c, "orders.place", err)
	}
	applog.Audit(c, "orders.place", map[string]any{
		"order_id":   r.ID,
		"subtotal":   r.Subtotal,
		"line_total": r.LineTotal,
		"mismatch":   r.Mismatch(),
	})
	return c.JSON(r.ID)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "urbanbean/internal/log"
	"urbanbean/internal/services"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /api/products?category=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	category, ok, err := categoryParam(c)
	if !ok {
		return err
	}
	products, err := h.Catalog.ListProducts(c.UserContext(), category)
	if err != nil {
		return respondError(c, "products.list", err)
	}
	return c.JSON(products)
}

// POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	raw, err := bindObject(c)
	if err != nil {
		return badBody(c, err)
	}
	id, err := h.Catalog.CreateProduct(c.UserContext(), raw)
	if err != nil {
		return respondError(c, "products.create", err)
	}
	applog.Audit(c, "products.create", map[string]any{"id": id})
	return c.JSON(id)
}

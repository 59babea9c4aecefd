package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "urbanbean/internal/log"
	"urbanbean/internal/services"
)

type ArticleHandler struct {
	Catalog *services.CatalogService
}

// GET /api/articles?category=
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	category, ok, err := categoryParam(c)
	if !ok {
		return err
	}
	articles, err := h.Catalog.ListArticles(c.UserContext(), category)
	if err != nil {
		return respondError(c, "articles.list", err)
	}
	return c.JSON(articles)
}

// POST /api/articles
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	raw, err := bindObject(c)
	if err != nil {
		return badBody(c, err)
	}
	id, err := h.Catalog.CreateArticle(c.UserContext(), raw)
	if err != nil {
		return respondError(c, "articles.create", err)
	}
	applog.Audit(c, "articles.create", map[string]any{"id": id})
	return c.JSON(id)
}

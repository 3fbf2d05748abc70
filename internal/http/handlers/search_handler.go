package handlers

import (
	"strings"

	"zentwear/internal/log"
	"zentwear/internal/services"
	"zentwear/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		// Overlay opened without typing: empty result set, no error
		return c.JSON(fiber.Map{"q": "", "products": []any{}, "count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return fail(c, fiber.StatusBadRequest, "invalid search query")
	}

	products, err := h.Catalog.Search(q, 20)
	if err != nil {
		log.Error(c, "search.error", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load results")
	}
	return c.JSON(fiber.Map{"q": q, "products": products, "count": len(products)})
}

package handlers

import (
	"zentwear/internal/log"
	"zentwear/internal/services"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	Catalog *services.CatalogService
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	cats, err := h.Catalog.Categories()
	if err != nil {
		log.Error(c, "home.error", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load catalog")
	}
	featured, err := h.Catalog.Featured(8)
	if err != nil {
		log.Error(c, "home.error", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load catalog")
	}
	return c.JSON(fiber.Map{"categories": cats, "featured": featured})
}

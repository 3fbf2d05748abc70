package handlers

import (
	"strings"

	"zentwear/internal/log"
	"zentwear/internal/services"
	"zentwear/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog  *services.CatalogService
	PageSize int
}

// List is the products page: every filter dimension comes in as a query
// param, the response carries the page slice, counts and the chip row.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	f, err := h.Catalog.NewFilters()
	if err != nil {
		log.Error(c, "catalog.load.error", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load catalog")
	}
	span := f.PriceRange

	if raw := c.Query("q"); strings.TrimSpace(raw) != "" {
		q, ok := validate.Q(raw)
		if !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "q"})
			return fail(c, fiber.StatusBadRequest, "invalid search query")
		}
		f.Search = q
	}
	f.PriceRange = [2]int{
		validate.Price(c.Query("minPrice"), span[0]),
		validate.Price(c.Query("maxPrice"), span[1]),
	}
	for _, slug := range queryAll(c, "category") {
		if _, ok := validate.ID(slug); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "category"})
			return fail(c, fiber.StatusBadRequest, "invalid category")
		}
		f.Categories = append(f.Categories, slug)
	}
	f.Sizes = queryAll(c, "size")
	f.Colors = queryAll(c, "color")
	f.InStock = c.QueryBool("inStock")
	f.FreeShipping = c.QueryBool("freeShipping")

	sortKey := validate.SortKey(c.Query("sort"))
	page := validate.Page(c.Query("page"))

	view, err := h.Catalog.Browse(f, sortKey, page, h.PageSize)
	if err != nil {
		log.Error(c, "products.browse.error", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not load products")
	}
	return c.JSON(view)
}

// Detail returns one product plus the "suggested" row from its category.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return fail(c, fiber.StatusNotFound, "product not found")
	}
	p, err := h.Catalog.Get(id)
	if err != nil || p.ID == "" {
		return fail(c, fiber.StatusNotFound, "product not found")
	}
	suggested, err := h.Catalog.Suggested(p, 4)
	if err != nil {
		log.Error(c, "products.suggested.error", err, nil)
		suggested = nil
	}
	return c.JSON(fiber.Map{
		"product":         p,
		"discountPercent": p.DiscountPercent(),
		"suggested":       suggested,
	})
}

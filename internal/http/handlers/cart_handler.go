package handlers

import (
	"zentwear/internal/cart"
	"zentwear/internal/log"
	"zentwear/internal/services"
	"zentwear/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CartHandler struct {
	Carts   *services.CartService
	Catalog *services.CatalogService
}

func (h *CartHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

type cartItemRequest struct {
	ProductID string `json:"productId" form:"productId"`
	Quantity  int    `json:"quantity" form:"quantity"`
	Size      string `json:"size" form:"size"`
	Color     string `json:"color" form:"color"`
}

func (r cartItemRequest) variant(colorName string) cart.Variant {
	return cart.Variant{Size: r.Size, Color: colorName}
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	return c.JSON(h.Carts.View(sid))
}

// Add snapshots the product into a cart line. Same product and variant
// merge into one line.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return fail(c, fiber.StatusBadRequest, "missing productId")
	}
	p, err := h.Catalog.Get(id)
	if err != nil || p.ID == "" {
		return fail(c, fiber.StatusNotFound, "product not found")
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	if req.Quantity > 50 {
		req.Quantity = 50
	}

	// The drawer shows the color display name, not its value
	colorName := req.Color
	for _, col := range p.Colors {
		if col.Value == req.Color {
			colorName = col.Name
			break
		}
	}
	if colorName == "" && len(p.Colors) > 0 {
		colorName = p.Colors[0].Name
	}

	h.Carts.Cart(sid).AddItem(cart.Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  req.Quantity,
		Variant:   req.variant(colorName),
	})
	log.Info(c, "cart.add", map[string]any{"productId": p.ID, "qty": req.Quantity})
	return c.JSON(h.Carts.View(sid))
}

// Update sets a line's quantity; zero removes the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing productId")
	}
	h.Carts.Cart(sid).UpdateQuantity(id, req.variant(req.Color), req.Quantity)
	return c.JSON(h.Carts.View(sid))
}

// Delete removes every line of the product, any variant.
func (h *CartHandler) Delete(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	id, ok := validate.ID(req.ProductID)
	if !ok {
		return fail(c, fiber.StatusBadRequest, "missing productId")
	}
	h.Carts.Cart(sid).RemoveItem(id)
	return c.JSON(h.Carts.View(sid))
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	h.Carts.Cart(sid).Clear()
	return c.JSON(h.Carts.View(sid))
}

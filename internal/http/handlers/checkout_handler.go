package handlers

import (
	"errors"

	"zentwear/internal/log"
	"zentwear/internal/services"
	"zentwear/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	Checkout *services.CheckoutService
}

// Place validates the checkout form and finishes the order: the cart is
// cleared and a confirmation id returned. Field problems come back as a
// local validation message, the storefront's only failure surface.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid == "" {
		return fail(c, fiber.StatusBadRequest, "cart empty")
	}

	var form services.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid body")
	}
	if _, ok := validate.Name(form.Name); !ok {
		return fail(c, fiber.StatusBadRequest, "missing or invalid field: name")
	}
	if _, ok := validate.Phone(form.Phone); !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "phone"})
		return fail(c, fiber.StatusBadRequest, "missing or invalid field: phone")
	}
	if form.Email != "" {
		if _, ok := validate.Email(form.Email); !ok {
			return fail(c, fiber.StatusBadRequest, "missing or invalid field: email")
		}
	}

	summary, err := h.Checkout.Place(sid, form)
	if err != nil {
		var fe services.FieldError
		if errors.As(err, &fe) || errors.Is(err, services.ErrCartEmpty) {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		log.Error(c, "checkout.error", err, nil)
		return fail(c, fiber.StatusInternalServerError, "could not place order")
	}
	log.Info(c, "order.placed", map[string]any{"orderId": summary.OrderID, "total": summary.Total})
	return c.JSON(summary)
}

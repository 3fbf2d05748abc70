package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"zentwear/internal/cart"
)

// Shipping fees in VND. Orders at or above the free-shipping threshold
// ship free regardless of method.
const (
	ShippingStandard = 30000
	ShippingExpress  = 50000
)

var ErrCartEmpty = errors.New("cart empty")

// FieldError is the one user-facing checkout failure: a required field
// is missing or malformed.
type FieldError struct{ Field string }

func (e FieldError) Error() string { return fmt.Sprintf("missing or invalid field: %s", e.Field) }

type CheckoutForm struct {
	Name           string `json:"name" form:"name"`
	Phone          string `json:"phone" form:"phone"`
	Email          string `json:"email" form:"email"`
	Address        string `json:"address" form:"address"`
	City           string `json:"city" form:"city"`
	District       string `json:"district" form:"district"`
	Ward           string `json:"ward" form:"ward"`
	Note           string `json:"note" form:"note"`
	ShippingMethod string `json:"shippingMethod" form:"shippingMethod"` // standard | express
	PaymentMethod  string `json:"paymentMethod" form:"paymentMethod"`  // cod | bank-transfer | momo
}

type OrderSummary struct {
	OrderID     string `json:"orderId"`
	Subtotal    int    `json:"subtotal"`
	ShippingFee int    `json:"shippingFee"`
	Total       int    `json:"total"`
}

type CheckoutService struct {
	Carts *CartService
}

func NewCheckoutService(carts *CartService) *CheckoutService {
	return &CheckoutService{Carts: carts}
}

// ShippingFee derives the fee from the subtotal and shipping method.
func ShippingFee(subtotal int, method string) int {
	if subtotal >= cart.FreeShippingThreshold {
		return 0
	}
	if method == "express" {
		return ShippingExpress
	}
	return ShippingStandard
}

// Place validates the form, prices the order and clears the cart. No
// order is persisted and no payment is taken; the returned id is only an
// acknowledgment for the confirmation screen.
func (s *CheckoutService) Place(sessionID string, f CheckoutForm) (OrderSummary, error) {
	for _, req := range []struct{ field, value string }{
		{"name", f.Name},
		{"phone", f.Phone},
		{"address", f.Address},
		{"city", f.City},
		{"district", f.District},
		{"ward", f.Ward},
	} {
		if req.value == "" {
			return OrderSummary{}, FieldError{Field: req.field}
		}
	}
	if f.ShippingMethod == "" {
		f.ShippingMethod = "standard"
	}
	if f.ShippingMethod != "standard" && f.ShippingMethod != "express" {
		return OrderSummary{}, FieldError{Field: "shippingMethod"}
	}
	switch f.PaymentMethod {
	case "", "cod", "bank-transfer", "momo":
	default:
		return OrderSummary{}, FieldError{Field: "paymentMethod"}
	}

	st := s.Carts.Cart(sessionID)
	subtotal := st.TotalPrice()
	if st.TotalItems() == 0 {
		return OrderSummary{}, ErrCartEmpty
	}

	fee := ShippingFee(subtotal, f.ShippingMethod)
	st.Clear()

	return OrderSummary{
		OrderID:     uuid.NewString(),
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
	}, nil
}

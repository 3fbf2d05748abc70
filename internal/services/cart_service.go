package services

import (
	"sync"

	"zentwear/internal/cart"
)

// CartService owns one cart.Store per browsing session, keyed by the sid
// cookie. Stores live only for the process lifetime; there is no
// cross-session persistence.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*cart.Store
}

func NewCartService() *CartService {
	return &CartService{carts: map[string]*cart.Store{}}
}

// Cart returns the session's store, creating it on first use.
func (s *CartService) Cart(sessionID string) *cart.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.carts[sessionID]
	if !ok {
		st = cart.NewStore()
		s.carts[sessionID] = st
	}
	return st
}

// CartView is the drawer payload: lines plus the derived aggregates.
type CartView struct {
	Items                []cart.Line `json:"items"`
	TotalItems           int         `json:"totalItems"`
	TotalPrice           int         `json:"totalPrice"`
	FreeShipping         bool        `json:"freeShipping"`
	AmountToFreeShipping int         `json:"amountToFreeShipping"`
	Progress             float64     `json:"freeShippingProgress"`
}

func (s *CartService) View(sessionID string) CartView {
	st := s.Cart(sessionID)
	return CartView{
		Items:                st.Items(),
		TotalItems:           st.TotalItems(),
		TotalPrice:           st.TotalPrice(),
		FreeShipping:         st.QualifiesFreeShipping(),
		AmountToFreeShipping: st.AmountToFreeShipping(),
		Progress:             st.FreeShippingProgress(),
	}
}

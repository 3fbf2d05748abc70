package cart

import "sync"

// FreeShippingThreshold is the order subtotal (VND) at which shipping
// becomes free.
const FreeShippingThreshold = 300000

// Variant is the size/color combination chosen at add-to-cart time.
type Variant struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// Line is one cart entry: a denormalized product snapshot plus quantity.
// Identity is (ProductID, Variant); the same product in a different size
// or color is a separate line.
type Line struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     int     `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
	Variant   Variant `json:"variant"`
}

// Store holds one session's cart. Construct one per session; there is
// no package-level state.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

func NewStore() *Store { return &Store{} }

// AddItem merges into an existing line with the same (ProductID, Variant),
// otherwise appends. Quantity below 1 counts as 1. Never fails.
func (s *Store) AddItem(l Line) {
	if l.Quantity < 1 {
		l.Quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ProductID == l.ProductID && s.lines[i].Variant == l.Variant {
			s.lines[i].Quantity += l.Quantity
			return
		}
	}
	s.lines = append(s.lines, l)
}

// RemoveItem deletes every line for the product, any variant. No-op when
// absent.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	s.lines = kept
}

// RemoveLine deletes one exact (ProductID, Variant) line. No-op when
// absent.
func (s *Store) RemoveLine(productID string, v Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ProductID == productID && s.lines[i].Variant == v {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of the matching line. Zero or negative
// removes the line, same as deleting it from the drawer.
func (s *Store) UpdateQuantity(productID string, v Variant, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ProductID == productID && s.lines[i].Variant == v {
			if qty <= 0 {
				s.lines = append(s.lines[:i], s.lines[i+1:]...)
			} else {
				s.lines[i].Quantity = qty
			}
			return
		}
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Items returns a snapshot copy of the lines.
func (s *Store) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Store) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := 0
	for _, l := range s.lines {
		sum += l.Price * l.Quantity
	}
	return sum
}

// QualifiesFreeShipping reports whether the subtotal has reached the
// threshold.
func (s *Store) QualifiesFreeShipping() bool {
	return s.TotalPrice() >= FreeShippingThreshold
}

// AmountToFreeShipping is how much more to spend for free shipping, zero
// once qualified.
func (s *Store) AmountToFreeShipping() int {
	if rest := FreeShippingThreshold - s.TotalPrice(); rest > 0 {
		return rest
	}
	return 0
}

// FreeShippingProgress is the drawer progress bar ratio, capped at 1.
func (s *Store) FreeShippingProgress() float64 {
	ratio := float64(s.TotalPrice()) / float64(FreeShippingThreshold)
	if ratio > 1 {
		return 1
	}
	return ratio
}

package domain

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Color struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Hex   string `json:"hex"`
}

// Product is a storefront catalog entry. Prices are VND, no decimals.
// OriginalPrice and Rating are zero when absent.
type Product struct {
	ID            string   `json:"id"`
	CategoryID    string   `json:"categoryId"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice,omitempty"`
	Image         string   `json:"image,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []Color  `json:"colors,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	ReviewCount   int      `json:"reviewCount,omitempty"`
	InStock       bool     `json:"inStock"`
	FreeShipping  bool     `json:"freeShipping"`
	CreatedAt     string   `json:"createdAt,omitempty"`
}

// DiscountPercent is the badge value shown when a product is on sale.
// Zero when there is no original price or it does not exceed the price.
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == 0 || p.OriginalPrice <= p.Price {
		return 0
	}
	return int(float64(p.OriginalPrice-p.Price) / float64(p.OriginalPrice) * 100)
}

// HasColor reports whether the product carries the given color value.
func (p Product) HasColor(value string) bool {
	for _, c := range p.Colors {
		if c.Value == value {
			return true
		}
	}
	return false
}

// HasSize reports whether the product is offered in the given size label.
func (p Product) HasSize(label string) bool {
	for _, s := range p.Sizes {
		if s == label {
			return true
		}
	}
	return false
}

package catalog

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Chip is one removable token on the "active filters" row. Dimension and
// Value identify the exact FilterState field it maps back to.
type Chip struct {
	Dimension Dimension `json:"dimension"`
	Value     string    `json:"value,omitempty"`
	Label     string    `json:"label"`
}

// Refs carries the display metadata Summarize needs: category and color
// names plus the catalog-wide price span.
type Refs struct {
	CategoryNames map[string]string
	ColorNames    map[string]string
	PriceSpan     [2]int
}

var vnd = message.NewPrinter(language.Vietnamese)

// Summarize derives the active-filter chips in display order: search,
// price, categories, sizes, colors, stock, shipping. Set members without
// a known display name are skipped rather than shown raw.
func Summarize(f FilterState, refs Refs) []Chip {
	chips := []Chip{}

	if f.Search != "" {
		chips = append(chips, Chip{Dimension: DimSearch, Label: fmt.Sprintf("Tìm kiếm: %q", f.Search)})
	}
	if f.PriceRange != refs.PriceSpan {
		chips = append(chips, Chip{
			Dimension: DimPrice,
			Label:     vnd.Sprintf("Giá: %d₫ - %d₫", f.PriceRange[0], f.PriceRange[1]),
		})
	}
	for _, slug := range f.Categories {
		if name, ok := refs.CategoryNames[slug]; ok {
			chips = append(chips, Chip{Dimension: DimCategories, Value: slug, Label: name})
		}
	}
	for _, size := range f.Sizes {
		chips = append(chips, Chip{Dimension: DimSizes, Value: size, Label: "Size: " + size})
	}
	for _, value := range f.Colors {
		if name, ok := refs.ColorNames[value]; ok {
			chips = append(chips, Chip{Dimension: DimColors, Value: value, Label: name})
		}
	}
	if f.InStock {
		chips = append(chips, Chip{Dimension: DimInStock, Label: "Còn hàng"})
	}
	if f.FreeShipping {
		chips = append(chips, Chip{Dimension: DimFreeShipping, Label: "Miễn phí vận chuyển"})
	}
	return chips
}

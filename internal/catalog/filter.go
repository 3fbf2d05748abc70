package catalog

// Dimension names one filterable facet. Chip removal maps a dimension
// (plus an optional value for the set-valued ones) back to the single
// FilterState field it came from.
type Dimension string

const (
	DimSearch       Dimension = "search"
	DimPrice        Dimension = "priceRange"
	DimCategories   Dimension = "categories"
	DimSizes        Dimension = "sizes"
	DimColors       Dimension = "colors"
	DimInStock      Dimension = "inStock"
	DimFreeShipping Dimension = "freeShipping"
)

// FilterState describes every active filter on the product listing.
// Empty Categories/Sizes/Colors mean "no restriction", not "match nothing".
type FilterState struct {
	Search       string   `json:"search"`
	PriceRange   [2]int   `json:"priceRange"`
	Categories   []string `json:"categories"`
	Sizes        []string `json:"sizes"`
	Colors       []string `json:"colors"`
	InStock      bool     `json:"inStock"`
	FreeShipping bool     `json:"freeShipping"`
}

// NewFilterState returns the inactive state: price range spans the whole
// catalog, everything else off.
func NewFilterState(minPrice, maxPrice int) FilterState {
	return FilterState{PriceRange: [2]int{minPrice, maxPrice}}
}

// Remove resets exactly the field (or set member) the dimension refers to.
// fullRange is the catalog-wide price span priceRange falls back to.
func (f FilterState) Remove(dim Dimension, value string, fullRange [2]int) FilterState {
	switch dim {
	case DimSearch:
		f.Search = ""
	case DimPrice:
		f.PriceRange = fullRange
	case DimCategories:
		f.Categories = without(f.Categories, value)
	case DimSizes:
		f.Sizes = without(f.Sizes, value)
	case DimColors:
		f.Colors = without(f.Colors, value)
	case DimInStock:
		f.InStock = false
	case DimFreeShipping:
		f.FreeShipping = false
	}
	return f
}

// Clear returns the inactive state for the given catalog price span.
func (f FilterState) Clear(fullRange [2]int) FilterState {
	return FilterState{PriceRange: fullRange}
}

// Toggle flips membership of value in one of the set-valued dimensions.
func (f FilterState) Toggle(dim Dimension, value string) FilterState {
	switch dim {
	case DimCategories:
		f.Categories = toggle(f.Categories, value)
	case DimSizes:
		f.Sizes = toggle(f.Sizes, value)
	case DimColors:
		f.Colors = toggle(f.Colors, value)
	}
	return f
}

// ActiveCount is the filter badge number: one per set member, one for
// each active scalar field.
func (f FilterState) ActiveCount(fullRange [2]int) int {
	n := len(f.Categories) + len(f.Sizes) + len(f.Colors)
	if f.Search != "" {
		n++
	}
	if f.PriceRange != fullRange {
		n++
	}
	if f.InStock {
		n++
	}
	if f.FreeShipping {
		n++
	}
	return n
}

func without(set []string, value string) []string {
	out := make([]string, 0, len(set))
	for _, v := range set {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

func toggle(set []string, value string) []string {
	for _, v := range set {
		if v == value {
			return without(set, value)
		}
	}
	return append(append([]string(nil), set...), value)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

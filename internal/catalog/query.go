package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"zentwear/internal/domain"
)

// Sort keys accepted by Query. Anything else falls back to source order.
const (
	SortDefault   = "default"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortNewest    = "newest"
)

// Query returns the products matching every filter dimension, ordered by
// sortKey. The input slice is never mutated; ties keep source order.
func Query(products []domain.Product, f FilterState, sortKey string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, f) {
			out = append(out, p)
		}
	}
	sortProducts(out, sortKey)
	return out
}

// Matches applies all seven predicates: AND across dimensions, OR within
// the set-valued ones.
func Matches(p domain.Product, f FilterState) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if p.Price < f.PriceRange[0] || p.Price > f.PriceRange[1] {
		return false
	}
	if len(f.Categories) > 0 && !contains(f.Categories, p.CategoryID) {
		return false
	}
	if len(f.Sizes) > 0 && !anySize(p, f.Sizes) {
		return false
	}
	if len(f.Colors) > 0 && !anyColor(p, f.Colors) {
		return false
	}
	if f.InStock && !p.InStock {
		return false
	}
	if f.FreeShipping && !p.FreeShipping {
		return false
	}
	return true
}

func anySize(p domain.Product, sizes []string) bool {
	for _, s := range sizes {
		if p.HasSize(s) {
			return true
		}
	}
	return false
}

func anyColor(p domain.Product, colors []string) bool {
	for _, c := range colors {
		if p.HasColor(c) {
			return true
		}
	}
	return false
}

func sortProducts(ps []domain.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	case SortRating:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Rating > ps[j].Rating })
	case SortNameAsc:
		c := collate.New(language.Vietnamese)
		sort.SliceStable(ps, func(i, j int) bool { return c.CompareString(ps[i].Name, ps[j].Name) < 0 })
	case SortNameDesc:
		c := collate.New(language.Vietnamese)
		sort.SliceStable(ps, func(i, j int) bool { return c.CompareString(ps[i].Name, ps[j].Name) > 0 })
	case SortNewest:
		// RFC 3339 timestamps order lexicographically
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].CreatedAt > ps[j].CreatedAt })
	}
}

package catalog_test

import (
	"reflect"
	"testing"

	"zentwear/internal/catalog"
	"zentwear/internal/domain"
)

func fixture() []domain.Product {
	return []domain.Product{
		{
			ID: "p1", CategoryID: "ao-thun", Name: "Áo thun Premium Cotton", Price: 299000,
			Sizes:  []string{"S", "M", "L"},
			Colors: []domain.Color{{Name: "Đen", Value: "black", Hex: "#000000"}},
			Rating: 4.8, InStock: true, FreeShipping: true, CreatedAt: "2025-07-28T09:00:00Z",
		},
		{
			ID: "p2", CategoryID: "quan-jean", Name: "Quần jean Slim Fit", Price: 450000,
			Sizes:  []string{"30", "32"},
			Colors: []domain.Color{{Name: "Xanh đậm", Value: "dark-blue", Hex: "#191970"}},
			Rating: 4.2, InStock: true, CreatedAt: "2025-07-21T09:00:00Z",
		},
		{
			ID: "p3", CategoryID: "ao-thun", Name: "Áo thun Oversize", Price: 259000,
			Sizes:  []string{"M", "L", "XL"},
			Colors: []domain.Color{{Name: "Be", Value: "beige", Hex: "#F5F5DC"}},
			InStock: false, CreatedAt: "2025-07-14T09:00:00Z",
		},
		{
			ID: "p4", CategoryID: "ao-khoac", Name: "Áo khoác Bomber", Price: 650000,
			Sizes:  []string{"L", "XL"},
			Colors: []domain.Color{{Name: "Đen", Value: "black", Hex: "#000000"}},
			Rating: 4.9, InStock: true, FreeShipping: true, CreatedAt: "2025-07-07T09:00:00Z",
		},
	}
}

func span() [2]int { return [2]int{0, 1000000} }

func ids(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestQueryPriceRange(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Price: 100}, {ID: "b", Price: 200}, {ID: "c", Price: 300},
	}
	f := catalog.NewFilterState(0, 1000)
	f.PriceRange = [2]int{150, 300}

	got := catalog.Query(products, f, catalog.SortDefault)
	if want := []string{"b", "c"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("want %v, got %v", want, ids(got))
	}
}

func TestQueryAllDimensions(t *testing.T) {
	f := catalog.NewFilterState(span()[0], span()[1])
	f.Search = "áo"
	f.Categories = []string{"ao-thun", "ao-khoac"}
	f.Sizes = []string{"L"}
	f.Colors = []string{"black"}
	f.InStock = true
	f.FreeShipping = true

	products := fixture()
	got := catalog.Query(products, f, catalog.SortDefault)
	if want := []string{"p1", "p4"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("want %v, got %v", want, ids(got))
	}
	// every excluded product fails at least one predicate
	for _, p := range products {
		if !contains(ids(got), p.ID) && catalog.Matches(p, f) {
			t.Fatalf("excluded product %s matches all predicates", p.ID)
		}
	}
}

func TestQueryEmptySetsMeanNoRestriction(t *testing.T) {
	f := catalog.NewFilterState(span()[0], span()[1])
	got := catalog.Query(fixture(), f, catalog.SortDefault)
	if len(got) != 4 {
		t.Fatalf("want all 4 products, got %d", len(got))
	}
}

func TestQuerySearchCaseInsensitive(t *testing.T) {
	f := catalog.NewFilterState(span()[0], span()[1])
	f.Search = "ÁO THUN"
	got := catalog.Query(fixture(), f, catalog.SortDefault)
	if want := []string{"p1", "p3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("want %v, got %v", want, ids(got))
	}
}

func TestQueryIdempotent(t *testing.T) {
	f := catalog.NewFilterState(span()[0], span()[1])
	f.Categories = []string{"ao-thun"}

	once := catalog.Query(fixture(), f, catalog.SortPriceAsc)
	twice := catalog.Query(once, f, catalog.SortPriceAsc)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	products := fixture()
	before := ids(products)
	_ = catalog.Query(products, catalog.NewFilterState(span()[0], span()[1]), catalog.SortPriceDesc)
	if !reflect.DeepEqual(ids(products), before) {
		t.Fatalf("input order changed: %v", ids(products))
	}
}

func TestSortStableOnTies(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Price: 100}, {ID: "b", Price: 100}, {ID: "c", Price: 50},
	}
	got := catalog.Query(products, catalog.NewFilterState(0, 1000), catalog.SortPriceAsc)
	if want := []string{"c", "a", "b"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ties must keep source order: want %v, got %v", want, ids(got))
	}
}

func TestSortRatingMissingAsZero(t *testing.T) {
	got := catalog.Query(fixture(), catalog.NewFilterState(span()[0], span()[1]), catalog.SortRating)
	if want := []string{"p4", "p1", "p2", "p3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("want %v, got %v", want, ids(got))
	}
}

func TestSortNameVietnamese(t *testing.T) {
	got := catalog.Query(fixture(), catalog.NewFilterState(span()[0], span()[1]), catalog.SortNameAsc)
	// Á sorts before Q under Vietnamese collation
	if first := got[0].Name; first != "Áo khoác Bomber" {
		t.Fatalf("want Áo khoác Bomber first, got %q", first)
	}
	if last := got[len(got)-1].Name; last != "Quần jean Slim Fit" {
		t.Fatalf("want Quần jean Slim Fit last, got %q", last)
	}

	desc := catalog.Query(fixture(), catalog.NewFilterState(span()[0], span()[1]), catalog.SortNameDesc)
	if desc[0].Name != "Quần jean Slim Fit" {
		t.Fatalf("name-desc should start with Quần jean Slim Fit, got %q", desc[0].Name)
	}
}

func TestSortNewest(t *testing.T) {
	got := catalog.Query(fixture(), catalog.NewFilterState(span()[0], span()[1]), catalog.SortNewest)
	if want := []string{"p1", "p2", "p3", "p4"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("want %v, got %v", want, ids(got))
	}
}

func TestUnknownSortKeyKeepsSourceOrder(t *testing.T) {
	got := catalog.Query(fixture(), catalog.NewFilterState(span()[0], span()[1]), "bogus")
	if want := []string{"p1", "p2", "p3", "p4"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("want source order %v, got %v", want, ids(got))
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

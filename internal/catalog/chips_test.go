package catalog_test

import (
	"testing"

	"zentwear/internal/catalog"
)

func testRefs() catalog.Refs {
	return catalog.Refs{
		CategoryNames: map[string]string{"ao-thun": "Áo thun", "quan-jean": "Quần jean"},
		ColorNames:    map[string]string{"black": "Đen", "white": "Trắng"},
		PriceSpan:     [2]int{150000, 650000},
	}
}

func TestSummarizeEmitsOneChipPerActiveValue(t *testing.T) {
	refs := testRefs()
	f := catalog.NewFilterState(refs.PriceSpan[0], refs.PriceSpan[1])
	f.Search = "áo"
	f.PriceRange = [2]int{200000, 400000}
	f.Categories = []string{"ao-thun", "quan-jean"}
	f.Sizes = []string{"M"}
	f.Colors = []string{"black"}
	f.InStock = true
	f.FreeShipping = true

	chips := catalog.Summarize(f, refs)
	if len(chips) != 8 {
		t.Fatalf("want 8 chips, got %d: %+v", len(chips), chips)
	}

	wantDims := []catalog.Dimension{
		catalog.DimSearch, catalog.DimPrice,
		catalog.DimCategories, catalog.DimCategories,
		catalog.DimSizes, catalog.DimColors,
		catalog.DimInStock, catalog.DimFreeShipping,
	}
	for i, d := range wantDims {
		if chips[i].Dimension != d {
			t.Fatalf("chip %d: want dimension %s, got %s", i, d, chips[i].Dimension)
		}
	}
}

func TestSummarizeLabels(t *testing.T) {
	refs := testRefs()
	f := catalog.NewFilterState(refs.PriceSpan[0], refs.PriceSpan[1])
	f.Search = "áo"
	f.PriceRange = [2]int{200000, 400000}
	f.Categories = []string{"ao-thun"}
	f.Sizes = []string{"M"}
	f.Colors = []string{"black"}
	f.InStock = true

	labels := map[string]bool{}
	for _, ch := range catalog.Summarize(f, refs) {
		labels[ch.Label] = true
	}
	for _, want := range []string{
		`Tìm kiếm: "áo"`,
		"Giá: 200.000₫ - 400.000₫",
		"Áo thun",
		"Size: M",
		"Đen",
		"Còn hàng",
	} {
		if !labels[want] {
			t.Fatalf("missing label %q in %v", want, labels)
		}
	}
}

func TestSummarizeInactiveStateHasNoChips(t *testing.T) {
	refs := testRefs()
	f := catalog.NewFilterState(refs.PriceSpan[0], refs.PriceSpan[1])
	if chips := catalog.Summarize(f, refs); len(chips) != 0 {
		t.Fatalf("want no chips, got %+v", chips)
	}
}

func TestSummarizeSkipsUnknownDisplayNames(t *testing.T) {
	refs := testRefs()
	f := catalog.NewFilterState(refs.PriceSpan[0], refs.PriceSpan[1])
	f.Colors = []string{"chartreuse"}
	if chips := catalog.Summarize(f, refs); len(chips) != 0 {
		t.Fatalf("unknown color should not produce a chip, got %+v", chips)
	}
}

// Removing a chip resets exactly the field it was derived from.
func TestChipRemovalRoundTrip(t *testing.T) {
	refs := testRefs()
	f := catalog.NewFilterState(refs.PriceSpan[0], refs.PriceSpan[1])
	f.Search = "áo"
	f.Categories = []string{"ao-thun"}

	chips := catalog.Summarize(f, refs)
	for _, ch := range chips {
		f = f.Remove(ch.Dimension, ch.Value, refs.PriceSpan)
	}
	if f.ActiveCount(refs.PriceSpan) != 0 {
		t.Fatalf("removing every chip should leave no active filters: %+v", f)
	}
}

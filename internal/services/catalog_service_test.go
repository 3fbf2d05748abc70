package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"zentwear/internal/catalog"
	"zentwear/internal/repos"
	"zentwear/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func newCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	db := memdb(t)
	return services.NewCatalogService(repos.NewCategoryRepo(db), repos.NewProductRepo(db))
}

func TestBrowseUnfiltered(t *testing.T) {
	svc := newCatalog(t)
	f, err := svc.NewFilters()
	if err != nil {
		t.Fatal(err)
	}

	view, err := svc.Browse(f, catalog.SortDefault, 1, 12)
	if err != nil {
		t.Fatal(err)
	}
	if view.Total != 12 {
		t.Fatalf("seed catalog should have 12 products, got %d", view.Total)
	}
	if view.TotalPages != 1 {
		t.Fatalf("want 1 page, got %d", view.TotalPages)
	}
	if len(view.Chips) != 0 {
		t.Fatalf("no filters active, got chips %+v", view.Chips)
	}
}

func TestBrowseByCategory(t *testing.T) {
	svc := newCatalog(t)
	f, err := svc.NewFilters()
	if err != nil {
		t.Fatal(err)
	}
	f.Categories = []string{"ao-thun"}

	view, err := svc.Browse(f, catalog.SortPriceAsc, 1, 12)
	if err != nil {
		t.Fatal(err)
	}
	if view.Total != 3 {
		t.Fatalf("want 3 áo thun products, got %d", view.Total)
	}
	for _, p := range view.Products {
		if p.CategoryID != "ao-thun" {
			t.Fatalf("wrong category in result: %+v", p)
		}
	}
	for i := 1; i < len(view.Products); i++ {
		if view.Products[i-1].Price > view.Products[i].Price {
			t.Fatalf("not sorted ascending: %v", view.Products)
		}
	}
	if len(view.Chips) != 1 || view.Chips[0].Label != "Áo thun" {
		t.Fatalf("want a single Áo thun chip, got %+v", view.Chips)
	}
}

func TestBrowseStockAndShippingFlags(t *testing.T) {
	svc := newCatalog(t)
	f, err := svc.NewFilters()
	if err != nil {
		t.Fatal(err)
	}
	f.InStock = true
	f.FreeShipping = true

	view, err := svc.Browse(f, catalog.SortDefault, 1, 12)
	if err != nil {
		t.Fatal(err)
	}
	if view.Total == 0 {
		t.Fatal("expected at least one in-stock free-shipping product")
	}
	for _, p := range view.Products {
		if !p.InStock || !p.FreeShipping {
			t.Fatalf("flag filters violated: %+v", p)
		}
	}
}

func TestBrowsePageOutOfRangeIsEmpty(t *testing.T) {
	svc := newCatalog(t)
	f, err := svc.NewFilters()
	if err != nil {
		t.Fatal(err)
	}

	view, err := svc.Browse(f, catalog.SortDefault, 99, 12)
	if err != nil {
		t.Fatal(err)
	}
	if len(view.Products) != 0 {
		t.Fatalf("out-of-range page should be empty, got %d", len(view.Products))
	}
	if view.TotalPages != 1 {
		t.Fatalf("totalPages should still be 1, got %d", view.TotalPages)
	}
}

func TestPriceSpanCoversCatalog(t *testing.T) {
	svc := newCatalog(t)
	span, err := svc.PriceSpan()
	if err != nil {
		t.Fatal(err)
	}
	if span[0] != 150000 || span[1] != 650000 {
		t.Fatalf("want [150000 650000], got %v", span)
	}
}

func TestSuggestedExcludesSelf(t *testing.T) {
	svc := newCatalog(t)
	p, err := svc.Get("ao-thun-001")
	if err != nil {
		t.Fatal(err)
	}

	sug, err := svc.Suggested(p, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(sug) == 0 {
		t.Fatal("want suggestions from the same category")
	}
	for _, q := range sug {
		if q.ID == p.ID {
			t.Fatal("suggested list contains the product itself")
		}
		if q.CategoryID != p.CategoryID {
			t.Fatalf("suggestion from wrong category: %+v", q)
		}
	}
}

func TestSearchByName(t *testing.T) {
	svc := newCatalog(t)
	got, err := svc.Search("áo thun", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("want matches for áo thun")
	}
	for _, p := range got {
		if p.CategoryID != "ao-thun" {
			t.Fatalf("unexpected match: %+v", p)
		}
	}
}

func TestFeaturedIsTopRated(t *testing.T) {
	svc := newCatalog(t)
	got, err := svc.Featured(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("want 3 featured, got %d", len(got))
	}
	if got[0].ID != "ao-khoac-001" {
		t.Fatalf("highest-rated product should lead, got %s", got[0].ID)
	}
}

package services

import (
	"sort"
	"strings"
	"sync"

	"zentwear/internal/catalog"
	"zentwear/internal/domain"
	"zentwear/internal/repos"
)

// CatalogService loads the product list once from the fixture store and
// serves every derived view: the filtered/sorted/paginated listing with
// its chips, product detail with suggestions, overlay search and the
// featured row. All derivation is synchronous and pure over the cached
// slice.
type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo

	once       sync.Once
	loadErr    error
	products   []domain.Product
	categories []domain.Category
	refs       catalog.Refs
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) load() error {
	s.once.Do(func() {
		s.products, s.loadErr = s.Prods.All()
		if s.loadErr != nil {
			return
		}
		s.categories, s.loadErr = s.Cats.List()
		if s.loadErr != nil {
			return
		}

		catNames := make(map[string]string, len(s.categories))
		for _, c := range s.categories {
			catNames[c.ID] = c.Name
		}
		colorNames := map[string]string{}
		span := [2]int{0, 0}
		for i, p := range s.products {
			for _, c := range p.Colors {
				colorNames[c.Value] = c.Name
			}
			if i == 0 {
				span = [2]int{p.Price, p.Price}
				continue
			}
			if p.Price < span[0] {
				span[0] = p.Price
			}
			if p.Price > span[1] {
				span[1] = p.Price
			}
		}
		s.refs = catalog.Refs{CategoryNames: catNames, ColorNames: colorNames, PriceSpan: span}
	})
	return s.loadErr
}

// PriceSpan is the full [min,max] price range of the catalog, the
// inactive value of the price filter.
func (s *CatalogService) PriceSpan() ([2]int, error) {
	if err := s.load(); err != nil {
		return [2]int{}, err
	}
	return s.refs.PriceSpan, nil
}

func (s *CatalogService) Categories() ([]domain.Category, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	return s.categories, nil
}

// NewFilters returns the inactive filter state for this catalog.
func (s *CatalogService) NewFilters() (catalog.FilterState, error) {
	span, err := s.PriceSpan()
	if err != nil {
		return catalog.FilterState{}, err
	}
	return catalog.NewFilterState(span[0], span[1]), nil
}

// BrowseView is everything the listing page renders for one request.
type BrowseView struct {
	Products   []domain.Product `json:"products"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
	Page       int              `json:"page"`
	Chips      []catalog.Chip   `json:"activeFilters"`
}

// Browse runs the full derivation: filter, sort, paginate, summarize.
func (s *CatalogService) Browse(f catalog.FilterState, sortKey string, page, pageSize int) (BrowseView, error) {
	if err := s.load(); err != nil {
		return BrowseView{}, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	matched := catalog.Query(s.products, f, sortKey)
	pg := catalog.Paginate(matched, pageSize, page)
	return BrowseView{
		Products:   pg.Items,
		Total:      len(matched),
		TotalPages: pg.TotalPages,
		Page:       page,
		Chips:      catalog.Summarize(f, s.refs),
	}, nil
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	if err := s.load(); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(id)
}

// Suggested returns up to limit products from the same category,
// excluding the product itself.
func (s *CatalogService) Suggested(p domain.Product, limit int) ([]domain.Product, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	out := []domain.Product{}
	for _, q := range s.products {
		if q.CategoryID == p.CategoryID && q.ID != p.ID {
			out = append(out, q)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// Search is the overlay search: case-insensitive substring on name or
// category slug, capped at limit results.
func (s *CatalogService) Search(q string, limit int) ([]domain.Product, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	q = strings.ToLower(q)
	out := []domain.Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(p.CategoryID, q) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// Featured returns the top-rated products for the home page row.
func (s *CatalogService) Featured(limit int) ([]domain.Product, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	top := make([]domain.Product, len(s.products))
	copy(top, s.products)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Rating > top[j].Rating })
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}

package catalog

import "zentwear/internal/domain"

type Page struct {
	Items      []domain.Product `json:"items"`
	TotalPages int              `json:"totalPages"`
}

// Paginate slices one page out of an ordered result. It does not clamp:
// an out-of-range page yields empty Items, and callers are expected to
// reset to page 1 whenever filters, sort or page size change.
func Paginate(list []domain.Product, pageSize, page int) Page {
	if pageSize <= 0 {
		pageSize = 12
	}
	total := (len(list) + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if page < 1 || start >= len(list) {
		return Page{Items: []domain.Product{}, TotalPages: total}
	}
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	return Page{Items: list[start:end], TotalPages: total}
}

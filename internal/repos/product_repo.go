package repos

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"zentwear/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

type productRow struct {
	ID            string  `db:"id"`
	CategoryID    string  `db:"category_id"`
	Name          string  `db:"name"`
	Price         int     `db:"price"`
	OriginalPrice int     `db:"original_price"`
	Image         string  `db:"image"`
	SizesJSON     string  `db:"sizes_json"`
	ColorsJSON    string  `db:"colors_json"`
	Rating        float64 `db:"rating"`
	ReviewCount   int     `db:"review_count"`
	InStock       bool    `db:"in_stock"`
	FreeShipping  bool    `db:"free_shipping"`
	CreatedAt     string  `db:"created_at"`
}

func (r productRow) toDomain() (domain.Product, error) {
	p := domain.Product{
		ID: r.ID, CategoryID: r.CategoryID, Name: r.Name,
		Price: r.Price, OriginalPrice: r.OriginalPrice, Image: r.Image,
		Rating: r.Rating, ReviewCount: r.ReviewCount,
		InStock: r.InStock, FreeShipping: r.FreeShipping, CreatedAt: r.CreatedAt,
	}
	if r.SizesJSON != "" {
		if err := json.Unmarshal([]byte(r.SizesJSON), &p.Sizes); err != nil {
			return p, err
		}
	}
	if r.ColorsJSON != "" {
		if err := json.Unmarshal([]byte(r.ColorsJSON), &p.Colors); err != nil {
			return p, err
		}
	}
	return p, nil
}

const productColumns = `
  id, category_id, name, price, original_price, COALESCE(image,'') AS image,
  COALESCE(sizes_json,'') AS sizes_json, COALESCE(colors_json,'') AS colors_json,
  rating, review_count, in_stock, free_shipping, COALESCE(created_at,'') AS created_at`

// All returns the whole catalog in insertion order. Insertion order is
// what the listing shows under the "default" sort.
func (r *ProductRepo) All() ([]domain.Product, error) {
	var rows []productRow
	err := r.db.Select(&rows, `SELECT`+productColumns+` FROM products ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var row productRow
	if err := r.db.Get(&row, `SELECT`+productColumns+` FROM products WHERE id = ?`, id); err != nil {
		return domain.Product{}, err
	}
	return row.toDomain()
}

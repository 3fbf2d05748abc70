package repos

import (
	"encoding/json"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"zentwear/internal/domain"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the mock catalog if the DB is empty (idempotent; safe on every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price >= 0),
  original_price INTEGER NOT NULL DEFAULT 0,
  image TEXT,
  sizes_json TEXT,
  colors_json TEXT,
  rating REAL NOT NULL DEFAULT 0,
  review_count INTEGER NOT NULL DEFAULT 0,
  in_stock INTEGER NOT NULL DEFAULT 1,
  free_shipping INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category   ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_name       ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);
`
	_, err := db.Exec(schema)
	return err
}

var seedCategories = []domain.Category{
	{ID: "ao-thun", Name: "Áo thun"},
	{ID: "ao-so-mi", Name: "Áo sơ mi"},
	{ID: "quan-jean", Name: "Quần jean"},
	{ID: "quan-tay", Name: "Quần tây"},
	{ID: "ao-khoac", Name: "Áo khoác"},
	{ID: "phu-kien", Name: "Phụ kiện"},
}

var (
	colorBlack     = domain.Color{Name: "Đen", Value: "black", Hex: "#000000"}
	colorWhite     = domain.Color{Name: "Trắng", Value: "white", Hex: "#FFFFFF"}
	colorGray      = domain.Color{Name: "Xám", Value: "gray", Hex: "#808080"}
	colorBeige     = domain.Color{Name: "Be", Value: "beige", Hex: "#F5F5DC"}
	colorLightBlue = domain.Color{Name: "Xanh nhạt", Value: "light-blue", Hex: "#ADD8E6"}
	colorDarkBlue  = domain.Color{Name: "Xanh đậm", Value: "dark-blue", Hex: "#191970"}
	colorNavy      = domain.Color{Name: "Xanh navy", Value: "navy", Hex: "#000080"}
	colorOlive     = domain.Color{Name: "Xanh rêu", Value: "olive", Hex: "#556B2F"}
	colorRed       = domain.Color{Name: "Đỏ đô", Value: "red", Hex: "#B22222"}
	colorBrown     = domain.Color{Name: "Nâu", Value: "brown", Hex: "#8B4513"}
)

// The demo storefront catalog. Slice order is the "default" sort order.
var seedProducts = []domain.Product{
	{
		ID: "ao-thun-001", CategoryID: "ao-thun", Name: "Áo thun Premium Cotton",
		Price: 299000, OriginalPrice: 399000, Image: "/images/products/ao-thun-1.jpg",
		Sizes: []string{"S", "M", "L", "XL"}, Colors: []domain.Color{colorBlack, colorWhite, colorGray},
		Rating: 4.8, ReviewCount: 124, InStock: true, FreeShipping: true,
		CreatedAt: "2025-07-28T09:00:00Z",
	},
	{
		ID: "ao-thun-002", CategoryID: "ao-thun", Name: "Áo thun Oversize Street",
		Price: 259000, Image: "/images/products/ao-thun-2.jpg",
		Sizes: []string{"S", "M", "L", "XL"}, Colors: []domain.Color{colorBlack, colorBeige},
		Rating: 4.5, ReviewCount: 67, InStock: true,
		CreatedAt: "2025-07-21T09:00:00Z",
	},
	{
		ID: "ao-thun-003", CategoryID: "ao-thun", Name: "Áo polo Pique",
		Price: 320000, OriginalPrice: 380000, Image: "/images/products/ao-polo-1.jpg",
		Sizes: []string{"S", "M", "L", "XL"}, Colors: []domain.Color{colorWhite, colorNavy},
		Rating: 4.6, ReviewCount: 52, InStock: true, FreeShipping: true,
		CreatedAt: "2025-07-14T09:00:00Z",
	},
	{
		ID: "ao-so-mi-001", CategoryID: "ao-so-mi", Name: "Áo sơ mi Oxford",
		Price: 450000, OriginalPrice: 550000, Image: "/images/products/ao-so-mi-1.jpg",
		Sizes: []string{"S", "M", "L", "XL", "XXL"}, Colors: []domain.Color{colorWhite, colorLightBlue},
		Rating: 4.7, ReviewCount: 98, InStock: true, FreeShipping: true,
		CreatedAt: "2025-07-07T09:00:00Z",
	},
	{
		ID: "ao-so-mi-002", CategoryID: "ao-so-mi", Name: "Áo sơ mi Flannel kẻ",
		Price: 390000, Image: "/images/products/ao-so-mi-2.jpg",
		Sizes: []string{"M", "L", "XL"}, Colors: []domain.Color{colorRed},
		Rating: 4.3, ReviewCount: 31,
		CreatedAt: "2025-06-30T09:00:00Z",
	},
	{
		ID: "quan-jean-001", CategoryID: "quan-jean", Name: "Quần jean Slim Fit",
		Price: 450000, OriginalPrice: 590000, Image: "/images/products/quan-jean-1.jpg",
		Sizes: []string{"29", "30", "31", "32", "34"}, Colors: []domain.Color{colorDarkBlue, colorBlack},
		Rating: 4.6, ReviewCount: 143, InStock: true, FreeShipping: true,
		CreatedAt: "2025-06-23T09:00:00Z",
	},
	{
		ID: "quan-jean-002", CategoryID: "quan-jean", Name: "Quần jean Straight",
		Price: 420000, Image: "/images/products/quan-jean-2.jpg",
		Sizes: []string{"29", "30", "31", "32", "34"}, Colors: []domain.Color{colorLightBlue},
		Rating: 4.2, ReviewCount: 40, InStock: true,
		CreatedAt: "2025-06-16T09:00:00Z",
	},
	{
		ID: "quan-tay-001", CategoryID: "quan-tay", Name: "Quần tây Slim",
		Price: 380000, Image: "/images/products/quan-tay-1.jpg",
		Sizes: []string{"29", "30", "31", "32"}, Colors: []domain.Color{colorBlack, colorGray},
		Rating: 4.4, ReviewCount: 58, InStock: true, FreeShipping: true,
		CreatedAt: "2025-06-09T09:00:00Z",
	},
	{
		ID: "ao-khoac-001", CategoryID: "ao-khoac", Name: "Áo khoác Bomber",
		Price: 650000, OriginalPrice: 790000, Image: "/images/products/ao-khoac-1.jpg",
		Sizes: []string{"M", "L", "XL"}, Colors: []domain.Color{colorBlack, colorOlive},
		Rating: 4.9, ReviewCount: 89, InStock: true, FreeShipping: true,
		CreatedAt: "2025-06-02T09:00:00Z",
	},
	{
		ID: "ao-khoac-002", CategoryID: "ao-khoac", Name: "Áo khoác Denim",
		Price: 550000, Image: "/images/products/ao-khoac-2.jpg",
		Sizes: []string{"M", "L", "XL"}, Colors: []domain.Color{colorLightBlue},
		Rating: 4.1, ReviewCount: 22,
		CreatedAt: "2025-05-26T09:00:00Z",
	},
	{
		ID: "phu-kien-001", CategoryID: "phu-kien", Name: "Thắt lưng da bò",
		Price: 250000, Image: "/images/products/that-lung-1.jpg",
		Colors: []domain.Color{colorBrown, colorBlack},
		Rating: 4.0, ReviewCount: 17, InStock: true,
		CreatedAt: "2025-05-19T09:00:00Z",
	},
	{
		ID: "phu-kien-002", CategoryID: "phu-kien", Name: "Mũ lưỡi trai Classic",
		Price: 150000, Image: "/images/products/mu-1.jpg",
		Colors: []domain.Color{colorBlack, colorWhite},
		InStock: true,
		CreatedAt: "2025-05-12T09:00:00Z",
	},
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/products")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, c := range seedCategories {
		if _, err := tx.Exec(`INSERT INTO categories(id,name) VALUES(?,?)`, c.ID, c.Name); err != nil {
			return err
		}
	}
	for _, p := range seedProducts {
		sizes, err := json.Marshal(p.Sizes)
		if err != nil {
			return err
		}
		colors, err := json.Marshal(p.Colors)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO products(
			  id, category_id, name, price, original_price, image,
			  sizes_json, colors_json, rating, review_count, in_stock, free_shipping, created_at
			) VALUES(?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			p.ID, p.CategoryID, p.Name, p.Price, p.OriginalPrice, p.Image,
			string(sizes), string(colors), p.Rating, p.ReviewCount, p.InStock, p.FreeShipping, p.CreatedAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

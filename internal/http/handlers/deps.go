package handlers

import (
	"zentwear/internal/config"
	"zentwear/internal/repos"
	"zentwear/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler     *HomeHandler
	ProductHandler  *ProductHandler
	SearchHandler   *SearchHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	ProfileHandler  *ProfileHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	cartSvc := services.NewCartService()
	checkoutSvc := services.NewCheckoutService(cartSvc)

	return &Deps{
		HomeHandler:     &HomeHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, PageSize: cfg.PageSize},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Carts: cartSvc, Catalog: catalogSvc},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc},
		ProfileHandler:  &ProfileHandler{},
	}
}

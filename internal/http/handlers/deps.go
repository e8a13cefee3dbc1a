package handlers

import (
	"kicktwin/internal/config"
	"kicktwin/internal/repos"
	"kicktwin/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler   *CatalogHandler
	ProductHandler   *ProductHandler
	SearchHandler    *SearchHandler
	CartHandler      *CartHandler
	CheckoutHandler  *CheckoutHandler
	OrderHandler     *OrderHandler
	LoyaltyHandler   *LoyaltyHandler
	TrackingHandler  *TrackingHandler
	FavoritesHandler *FavoritesHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	tierRepo := repos.NewTierRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	favRepo := repos.NewFavoritesRepo(db)

	notify := services.LogNotifier{}

	catalogSvc := services.NewCatalogService(prodRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo, notify)
	checkoutSvc := services.NewCheckoutService(cartRepo, orderRepo, notify)
	loyaltySvc := services.NewLoyaltyService(tierRepo, orderRepo)
	trackingSvc := services.NewTrackingService(orderRepo)
	favSvc := services.NewFavoritesService(favRepo)

	return &Deps{
		CatalogHandler:   &CatalogHandler{Catalog: catalogSvc},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		SearchHandler:    &SearchHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc},
		CheckoutHandler:  &CheckoutHandler{Cart: cartSvc, Checkout: checkoutSvc},
		OrderHandler:     &OrderHandler{Repo: orderRepo},
		LoyaltyHandler:   &LoyaltyHandler{Loyalty: loyaltySvc},
		TrackingHandler:  &TrackingHandler{Tracking: trackingSvc},
		FavoritesHandler: &FavoritesHandler{Fav: favSvc},
	}
}

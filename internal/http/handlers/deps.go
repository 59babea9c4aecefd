package handlers

import (
	"urbanbean/internal/config"
	"urbanbean/internal/repos"
	"urbanbean/internal/services"
	"urbanbean/internal/store"
)

type Deps struct {
	ProductHandler     *ProductHandler
	ArticleHandler     *ArticleHandler
	OrderHandler       *OrderHandler
	DiagnosticsHandler *DiagnosticsHandler
}

// NewDeps wires handlers over one shared store handle.
func NewDeps(st store.Store, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(st)
	artRepo := repos.NewArticleRepo(st)
	orderRepo := repos.NewOrderRepo(st)

	catalogSvc := services.NewCatalogService(prodRepo, artRepo)
	orderSvc := services.NewOrderService(orderRepo)
	diagSvc := &services.DiagnosticsService{
		Store:          st,
		DatabaseURLSet: cfg.DatabaseURLSet,
	}

	return &Deps{
		ProductHandler:     &ProductHandler{Catalog: catalogSvc},
		ArticleHandler:     &ArticleHandler{Catalog: catalogSvc},
		OrderHandler:       &OrderHandler{Orders: orderSvc},
		DiagnosticsHandler: &DiagnosticsHandler{Diag: diagSvc},
	}
}

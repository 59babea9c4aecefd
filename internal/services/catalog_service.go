package services

import (
	"context"

	"urbanbean/internal/domain"
	"urbanbean/internal/query"
	"urbanbean/internal/repos"
)

type CatalogService struct {
	Products *repos.ProductRepo
	Articles *repos.ArticleRepo
}

func NewCatalogService(products *repos.ProductRepo, articles *repos.ArticleRepo) *CatalogService {
	return &CatalogService{Products: products, Articles: articles}
}

// ListProducts returns in-stock products, optionally only those tagged category.
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]domain.CoffeeProduct, error) {
	return s.Products.Find(ctx, query.Products(category))
}

// CreateProduct validates raw before anything is written.
func (s *CatalogService) CreateProduct(ctx context.Context, raw map[string]any) (string, error) {
	p, err := domain.NewCoffeeProduct(raw)
	if err != nil {
		return "", err
	}
	return s.Products.Create(ctx, p)
}

func (s *CatalogService) ListArticles(ctx context.Context, category string) ([]domain.Article, error) {
	return s.Articles.Find(ctx, query.Articles(category))
}

func (s *CatalogService) CreateArticle(ctx context.Context, raw map[string]any) (string, error) {
	a, err := domain.NewArticle(raw)
	if err != nil {
		return "", err
	}
	return s.Articles.Create(ctx, a)
}

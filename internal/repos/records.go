package repos

import (
	"urbanbean/internal/domain"
	"urbanbean/internal/store"
)

type (
	ProductRepo = Collection[domain.CoffeeProduct]
	ArticleRepo = Collection[domain.Article]
	OrderRepo   = Collection[domain.Order]
)

func NewProductRepo(s store.Store) *ProductRepo {
	return NewCollection(s, domain.ProductCollection, domain.CoffeeProduct.ToMap, domain.NewCoffeeProduct)
}

func NewArticleRepo(s store.Store) *ArticleRepo {
	return NewCollection(s, domain.ArticleCollection, domain.Article.ToMap, domain.NewArticle)
}

func NewOrderRepo(s store.Store) *OrderRepo {
	return NewCollection(s, domain.OrderCollection, domain.Order.ToMap, domain.NewOrder)
}

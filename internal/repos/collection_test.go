package repos_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urbanbean/internal/domain"
	"urbanbean/internal/query"
	"urbanbean/internal/repos"
	"urbanbean/internal/store"
)

func product(t *testing.T, m map[string]any) domain.CoffeeProduct {
	t.Helper()
	p, err := domain.NewCoffeeProduct(m)
	require.NoError(t, err)
	return p
}

func TestProductRepoCreateThenFind(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	r := repos.NewProductRepo(s)
	assert.Equal(t, domain.ProductCollection, r.Name())

	p := product(t, map[string]any{"title": "House Blend", "price": 11.0, "categories": []any{"blend", "dark"}})
	id, err := r.Create(ctx, p)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := r.Find(ctx, query.Products(""))
	require.NoError(t, err)
	assert.Equal(t, []domain.CoffeeProduct{p}, got)

	// written and read under the same physical name
	raw, err := s.Find(ctx, "coffeeproduct", nil)
	require.NoError(t, err)
	assert.Len(t, raw, 1)
}

func TestProductRepoCategoryFilter(t *testing.T) {
	ctx := context.Background()
	r := repos.NewProductRepo(store.NewMemoryStore())
	_, err := r.Create(ctx, product(t, map[string]any{"title": "House Blend", "price": 11.0, "categories": []any{"blend", "dark"}}))
	require.NoError(t, err)
	_, err = r.Create(ctx, product(t, map[string]any{"title": "Hidden", "price": 11.0, "in_stock": false, "categories": []any{"blend"}}))
	require.NoError(t, err)

	got, err := r.Find(ctx, query.Products("blend"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "House Blend", got[0].Title)

	got, err = r.Find(ctx, query.Products("espresso"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOrderRepoStoresSubtotalAsGiven(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	o, err := domain.NewOrder(map[string]any{
		"items":    []any{map[string]any{"product_id": "p1", "title": "Ethiopia Yirgacheffe", "quantity": 2, "price": 14.5}},
		"subtotal": 31.0, "email": "a@b.c", "shipping_name": "A", "shipping_address": "1 Road",
		"city": "C", "state": "S", "postal_code": "P", "country": "X",
	})
	require.NoError(t, err)

	id, err := repos.NewOrderRepo(s).Create(ctx, o)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	docs, err := s.Find(ctx, "order", nil)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 31.0, docs[0]["subtotal"])
	assert.Equal(t, "pending", docs[0]["status"])
}

func TestCollectionWrapsStoreFailures(t *testing.T) {
	ctx := context.Background()
	r := repos.NewArticleRepo(store.Unavailable(errors.New("no route to host")))

	_, err := r.Create(ctx, domain.Article{Title: "t", Slug: "s", Content: "c"})
	var serr *domain.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "insert", serr.Op)
	assert.Equal(t, "article", serr.Collection)
	assert.ErrorIs(t, err, store.ErrUnavailable)

	_, err = r.Find(ctx, query.Articles(""))
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "find", serr.Op)
}

func TestCollectionReportsUndecodableDocuments(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	_, err := s.Insert(ctx, "article", store.Document{"title": "no slug"})
	require.NoError(t, err)

	_, err = repos.NewArticleRepo(s).Find(ctx, query.Articles(""))
	var serr *domain.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "decode", serr.Op)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

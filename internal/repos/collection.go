package repos

import (
	"context"

	"urbanbean/internal/domain"
	"urbanbean/internal/store"
)

// Collection is a typed view of one store collection. Records cross the
// boundary only through encode and decode.
type Collection[T any] struct {
	store  store.Store
	name   domain.Collection
	encode func(T) map[string]any
	decode func(map[string]any) (T, error)
}

func NewCollection[T any](s store.Store, name domain.Collection, encode func(T) map[string]any, decode func(map[string]any) (T, error)) *Collection[T] {
	return &Collection[T]{store: s, name: name, encode: encode, decode: decode}
}

func (c *Collection[T]) Name() domain.Collection { return c.name }

// Create stores rec and returns its new identifier.
func (c *Collection[T]) Create(ctx context.Context, rec T) (string, error) {
	id, err := c.store.Insert(ctx, string(c.name), c.encode(rec))
	if err != nil {
		return "", &domain.StorageError{Op: "insert", Collection: string(c.name), Err: err}
	}
	return id, nil
}

// Find returns the records matching f, rebuilt through decode. A stored
// document that no longer decodes is reported as a storage error.
func (c *Collection[T]) Find(ctx context.Context, f store.Filter) ([]T, error) {
	docs, err := c.store.Find(ctx, string(c.name), f)
	if err != nil {
		return nil, &domain.StorageError{Op: "find", Collection: string(c.name), Err: err}
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		rec, err := c.decode(d)
		if err != nil {
			return nil, &domain.StorageError{Op: "decode", Collection: string(c.name), Err: err}
		}
		out = append(out, rec)
	}
	return out, nil
}

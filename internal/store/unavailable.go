package store

import (
	"context"
	"fmt"
)

// unavailableStore stands in for a store that could not be opened at startup.
// Every operation fails fast with the original cause; it never reconnects.
type unavailableStore struct {
	err error
}

// Unavailable returns a Store whose operations all fail with ErrUnavailable
// wrapping cause.
func Unavailable(cause error) Store {
	return &unavailableStore{err: fmt.Errorf("%w: %v", ErrUnavailable, cause)}
}

// Available reports whether s is a live store handle.
func Available(s Store) bool {
	if s == nil {
		return false
	}
	_, down := s.(*unavailableStore)
	return !down
}

func (u *unavailableStore) Name() string { return "unavailable" }

func (u *unavailableStore) Insert(context.Context, string, Document) (string, error) {
	return "", u.err
}

func (u *unavailableStore) Find(context.Context, string, Filter) ([]Document, error) {
	return nil, u.err
}

func (u *unavailableStore) ListCollections(context.Context) ([]string, error) {
	return nil, u.err
}

func (u *unavailableStore) Ping(context.Context) error { return u.err }

func (u *unavailableStore) Close() error { return nil }

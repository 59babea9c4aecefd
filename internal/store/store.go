// Package store defines the document store interface and its backends.
package store

import (
	"context"
	"encoding/json"
	"errors"
)

// IDField is the store-generated identifier every persisted document carries.
// It never leaves Find.
const IDField = "_id"

// Document is a schemaless record as held by a collection.
type Document = map[string]any

// ErrUnavailable is returned by every operation of a store that could not be opened.
var ErrUnavailable = errors.New("document store unavailable")

// Store gives create and read access to named collections. There is no update
// or delete.
type Store interface {
	// Insert persists doc plus a generated IDField and returns the identifier.
	Insert(ctx context.Context, collection string, doc Document) (string, error)

	// Find returns every document of the collection matching all filter
	// conditions, with IDField removed. No match is an empty result.
	Find(ctx context.Context, collection string, filter Filter) ([]Document, error)

	// ListCollections returns the sorted names of collections holding documents.
	ListCollections(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error
	Name() string
	Close() error
}

// withoutID copies doc, dropping any IDField the caller may have set.
func withoutID(doc Document) Document {
	out := make(Document, len(doc)+1)
	for k, v := range doc {
		if k != IDField {
			out[k] = v
		}
	}
	return out
}

// encode serializes doc with its identifier for the JSON-backed stores.
func encode(id string, doc Document) ([]byte, error) {
	stored := withoutID(doc)
	stored[IDField] = id
	return json.Marshal(stored)
}

// decode is the inverse of encode; the identifier is stripped.
func decode(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, IDField)
	return doc, nil
}

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps everything in memory. Data is lost on restart.
// Safe for concurrent use; documents come back in insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][][]byte)}
}

func (m *MemoryStore) Name() string { return "memory" }

// Insert stores a JSON snapshot so later changes to doc by the caller are not seen.
func (m *MemoryStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	b, err := encode(id, doc)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], b)
	return id, nil
}

func (m *MemoryStore) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Document{}
	for _, raw := range m.collections[collection] {
		doc, err := decode(raw)
		if err != nil {
			return nil, err
		}
		if filter.Matches(doc) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListCollections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.collections))
	for name, docs := range m.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

func (m *MemoryStore) Close() error { return nil }

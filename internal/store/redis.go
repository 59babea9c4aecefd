package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var _ Store = (*RedisStore)(nil)

const (
	docKeyPrefix   = "doc:"
	collectionsKey = "collections"
)

// RedisStore keeps each collection in a hash (doc:<collection>) of id -> JSON
// document, plus a set of known collection names.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// OpenRedis parses a redis:// URL and pings the server.
func OpenRedis(ctx context.Context, url string, timeout time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = timeout
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStore(client), nil
}

func (r *RedisStore) Name() string { return "redis" }

func (r *RedisStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	id := uuid.NewString()
	b, err := encode(id, doc)
	if err != nil {
		return "", err
	}
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, docKeyPrefix+collection, id, b)
		p.SAdd(ctx, collectionsKey, collection)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}
	return id, nil
}

func (r *RedisStore) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	all, err := r.client.HGetAll(ctx, docKeyPrefix+collection).Result()
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}
	out := []Document{}
	for id, raw := range all {
		doc, err := decode([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", id, err)
		}
		if filter.Matches(doc) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (r *RedisStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := r.client.SMembers(ctx, collectionsKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (r *RedisStore) Ping(ctx context.Context) error { return r.client.Ping(ctx).Err() }

func (r *RedisStore) Close() error { return r.client.Close() }

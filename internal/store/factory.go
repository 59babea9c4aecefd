package store

import (
	"context"
	"fmt"
	"time"
)

// Options selects and configures a backend.
type Options struct {
	Backend  string // sqlite (default) | mysql | mongo | redis | memory
	URL      string // DSN, mongodb:// URI or redis:// URL
	Database string // mongo database name
	Timeout  time.Duration
}

// Open creates the Store named by opts.Backend. The returned store is meant to
// be opened once and shared for the life of the process.
func Open(ctx context.Context, opts Options) (Store, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	switch opts.Backend {
	case "sqlite", "":
		dsn := opts.URL
		if dsn == "" {
			dsn = "urbanbean.db"
		}
		return OpenSQL(ctx, "sqlite", dsn)
	case "mysql":
		return OpenSQL(ctx, "mysql", opts.URL)
	case "mongo":
		return OpenMongo(ctx, opts.URL, opts.Database, opts.Timeout)
	case "redis":
		return OpenRedis(ctx, opts.URL, opts.Timeout)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: sqlite, mysql, mongo, redis, memory)", opts.Backend)
	}
}

package store

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var _ Store = (*SQLStore)(nil)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents(
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  collection TEXT NOT NULL,
  data TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection);
`

// MySQL runs one statement per Exec unless multiStatements is set in the DSN.
const mysqlSchema = `
CREATE TABLE IF NOT EXISTS documents(
  seq BIGINT AUTO_INCREMENT PRIMARY KEY,
  id VARCHAR(64) NOT NULL UNIQUE,
  collection VARCHAR(128) NOT NULL,
  data JSON NOT NULL,
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
  INDEX idx_documents_collection (collection)
)`

// SQLStore keeps every collection in one documents table, one JSON document
// per row. Filters are evaluated on the decoded documents.
type SQLStore struct {
	db     *sqlx.DB
	driver string
}

type documentRow struct {
	ID   string `db:"id"`
	Data string `db:"data"`
}

// OpenSQL connects with driver ("sqlite" or "mysql") and ensures the schema.
func OpenSQL(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// one writer; also keeps a ":memory:" database on a single connection
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	s, err := NewSQLStore(ctx, db, driver)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLStore wraps an open handle, creating the documents table if needed.
func NewSQLStore(ctx context.Context, db *sqlx.DB, driver string) (*SQLStore, error) {
	var schema string
	switch driver {
	case "sqlite":
		schema = sqliteSchema
	case "mysql":
		schema = mysqlSchema
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLStore{db: db, driver: driver}, nil
}

func (s *SQLStore) Name() string { return s.driver }

func (s *SQLStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	id := uuid.NewString()
	b, err := encode(id, doc)
	if err != nil {
		return "", err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, collection, data) VALUES (?, ?, ?)`,
		id, collection, string(b),
	); err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}
	return id, nil
}

func (s *SQLStore) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	var rows []documentRow
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT id, data FROM documents WHERE collection = ? ORDER BY seq`, collection,
	); err != nil {
		return nil, fmt.Errorf("select documents: %w", err)
	}
	out := []Document{}
	for _, r := range rows {
		doc, err := decode([]byte(r.Data))
		if err != nil {
			return nil, fmt.Errorf("document %s: %w", r.ID, err)
		}
		if filter.Matches(doc) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *SQLStore) ListCollections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.SelectContext(ctx, &names, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if names == nil {
		names = []string{}
	}
	return names, err
}

func (s *SQLStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLStore) Close() error { return s.db.Close() }

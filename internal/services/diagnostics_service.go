package services

import (
	"context"

	"urbanbean/internal/store"
	"urbanbean/internal/validate"
)

const (
	maxListedCollections = 10
	maxDiagnosticError   = 50
)

// DiagnosticsService reports store connectivity for the /test probe.
type DiagnosticsService struct {
	Store          store.Store
	DatabaseURLSet bool
}

// namedDatabase is implemented by stores bound to a named database (mongo).
type namedDatabase interface {
	DatabaseName() string
}

type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	StoreBackend     *string  `json:"store_backend"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (s *DiagnosticsService) Report(ctx context.Context) Report {
	r := Report{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if !store.Available(s.Store) {
		if s.Store != nil {
			r.Database = "available but not initialized"
		}
		return r
	}

	name := s.Store.Name()
	urlState := "not set"
	if s.DatabaseURLSet {
		urlState = "set"
	}
	dbName := "connected"
	if nd, ok := s.Store.(namedDatabase); ok && nd.DatabaseName() != "" {
		dbName = nd.DatabaseName()
	}
	r.StoreBackend = &name
	r.DatabaseURL = &urlState
	r.DatabaseName = &dbName
	r.Database = "available"
	r.ConnectionStatus = "connected"

	names, err := s.Store.ListCollections(ctx)
	if err != nil {
		r.Database = "connected but error: " + validate.Truncate(err.Error(), maxDiagnosticError)
		return r
	}
	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	r.Collections = append(r.Collections, names...)
	r.Database = "connected and working"
	return r
}

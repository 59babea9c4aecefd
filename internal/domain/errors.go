package domain

import (
	"fmt"
	"strings"

	"urbanbean/internal/validate"
)

const maxDiagnostic = 120

// FieldError is one rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lists every field that kept a record from being built.
type ValidationError struct {
	Record string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Record, strings.Join(parts, "; "))
}

// StorageError wraps a failure of the document store.
type StorageError struct {
	Op         string // insert | find | decode
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Diagnostic is the short message safe to hand back to API clients.
func (e *StorageError) Diagnostic() string {
	return validate.Truncate(e.Error(), maxDiagnostic)
}

package store

import (
	"encoding/json"
	"reflect"
)

// Condition is a match rule for one document field.
type Condition interface {
	matches(v any, present bool) bool
}

// Eq matches a field equal to Value, or an array field containing Value.
type Eq struct{ Value any }

// In matches a field equal to any of Values, or an array field containing any
// of them.
type In struct{ Values []any }

// Filter maps field names to conditions; a document matches when every
// condition holds.
type Filter map[string]Condition

// Matches reports whether doc satisfies every condition of f.
func (f Filter) Matches(doc Document) bool {
	for field, c := range f {
		v, ok := doc[field]
		if !c.matches(v, ok) {
			return false
		}
	}
	return true
}

func (e Eq) matches(v any, present bool) bool {
	if !present {
		return e.Value == nil
	}
	if equal(v, e.Value) {
		return true
	}
	for _, el := range elements(v) {
		if equal(el, e.Value) {
			return true
		}
	}
	return false
}

func (in In) matches(v any, present bool) bool {
	for _, want := range in.Values {
		if (Eq{Value: want}).matches(v, present) {
			return true
		}
	}
	return false
}

// elements returns the members of an array value, or nil for scalars.
func elements(v any) []any {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func equal(a, b any) bool {
	if x, ok := number(a); ok {
		y, ok := number(b)
		return ok && x == y
	}
	return reflect.DeepEqual(a, b)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		x, err := n.Float64()
		return x, err == nil
	}
	return 0, false
}

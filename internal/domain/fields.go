package domain

import (
	"encoding/json"
	"fmt"
	"math"

	"urbanbean/internal/validate"
)

// fields reads typed values out of an untyped mapping and remembers every
// problem it meets, so a record reports all bad fields at once.
type fields struct {
	src    map[string]any
	prefix string
	errs   []FieldError
	bad    map[string]bool
}

func newFields(src map[string]any, prefix string) *fields {
	return &fields{src: src, prefix: prefix, bad: map[string]bool{}}
}

func (f *fields) path(key string) string {
	if f.prefix == "" {
		return key
	}
	return f.prefix + "." + key
}

func (f *fields) fail(key, reason string) {
	p := f.path(key)
	f.errs = append(f.errs, FieldError{Field: p, Reason: reason})
	f.bad[p] = true
}

// check merges struct-tag violations, skipping fields that already failed to decode.
func (f *fields) check(rec any) {
	for _, v := range validate.Struct(rec) {
		p := v.Field
		if f.prefix != "" {
			p = f.prefix + "." + p
		}
		if f.failedUnder(p) {
			continue
		}
		f.errs = append(f.errs, FieldError{Field: p, Reason: v.Reason})
	}
}

func (f *fields) failedUnder(p string) bool {
	if f.bad[p] {
		return true
	}
	for b := range f.bad {
		if len(p) > len(b) && p[:len(b)] == b && (p[len(b)] == '.' || p[len(b)] == '[') {
			return true
		}
	}
	return false
}

func (f *fields) err(record string) error {
	if len(f.errs) == 0 {
		return nil
	}
	return &ValidationError{Record: record, Fields: f.errs}
}

func (f *fields) requiredString(key string) string {
	v, ok := f.src[key]
	if !ok {
		f.fail(key, "field required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail(key, "must be a string")
	}
	return s
}

func (f *fields) optionalString(key string) *string {
	v, ok := f.src[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		f.fail(key, "must be a string")
		return nil
	}
	return &s
}

func (f *fields) stringOr(key, def string) string {
	v, ok := f.src[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		f.fail(key, "must be a string")
		return def
	}
	return s
}

func (f *fields) requiredFloat(key string) float64 {
	v, ok := f.src[key]
	if !ok {
		f.fail(key, "field required")
		return 0
	}
	n, ok := toFloat(v)
	if !ok {
		f.fail(key, "must be a number")
	}
	return n
}

func (f *fields) requiredInt(key string) int {
	v, ok := f.src[key]
	if !ok {
		f.fail(key, "field required")
		return 0
	}
	n, ok := toInt(v)
	if !ok {
		f.fail(key, "must be an integer")
	}
	return n
}

// optionalInt applies def when the key is absent; an explicit null stays absent.
func (f *fields) optionalInt(key string, def int) *int {
	v, ok := f.src[key]
	if !ok {
		return &def
	}
	if v == nil {
		return nil
	}
	n, ok := toInt(v)
	if !ok {
		f.fail(key, "must be an integer")
		return nil
	}
	return &n
}

func (f *fields) boolOr(key string, def bool) bool {
	v, ok := f.src[key]
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		f.fail(key, "must be a boolean")
		return def
	}
	return b
}

// strings reads a list of strings; absent means empty.
func (f *fields) strings(key string) []string {
	out := []string{}
	v, ok := f.src[key]
	if !ok {
		return out
	}
	switch list := v.(type) {
	case []string:
		return append(out, list...)
	case []any:
		for i, e := range list {
			s, ok := e.(string)
			if !ok {
				f.fail(fmt.Sprintf("%s[%d]", key, i), "must be a string")
				continue
			}
			out = append(out, s)
		}
		return out
	default:
		f.fail(key, "must be a list of strings")
		return out
	}
}

// objects reads a required list of mappings. Entries that are not mappings are
// reported and left nil so callers keep the original indexes.
func (f *fields) objects(key string) []map[string]any {
	v, ok := f.src[key]
	if !ok {
		f.fail(key, "field required")
		return nil
	}
	switch list := v.(type) {
	case []map[string]any:
		return list
	case []any:
		out := make([]map[string]any, len(list))
		for i, e := range list {
			m, ok := e.(map[string]any)
			if !ok {
				f.fail(fmt.Sprintf("%s[%d]", key, i), "must be an object")
				continue
			}
			out[i] = m
		}
		return out
	default:
		f.fail(key, "must be a list")
		return nil
	}
}

func (f *fields) absorb(sub *fields) {
	f.errs = append(f.errs, sub.errs...)
	for p := range sub.bad {
		f.bad[p] = true
	}
}

func toFloat(v any) (float64, bool) {
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

// toInt accepts integer kinds and whole-number floats (JSON and BSON decode ints that way)
// that fit in an int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case json.Number:
		x, err := n.Int64()
		return int(x), err == nil
	}
	x, ok := toFloat(v)
	if !ok || x != math.Trunc(x) || x < math.MinInt || x >= -math.MinInt {
		return 0, false
	}
	return int(x), true
}

func optString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func optInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

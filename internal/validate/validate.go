package validate

import (
	"errors"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const maxCategory = 64

var structs = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire names (json tags), not Go names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Violation is one failed constraint, keyed by the field path inside the record
// (e.g. "price" or "items[1].quantity").
type Violation struct {
	Field  string
	Reason string
}

// Struct runs the `validate` tag constraints of s and returns every violation.
func Struct(s any) []Violation {
	err := structs.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Violation{{Reason: err.Error()}}
	}
	out := make([]Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Violation{Field: fieldPath(fe.Namespace()), Reason: reason(fe)})
	}
	return out
}

// fieldPath drops the leading struct type name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "http_url", "url":
		return "must be a valid http or https URL"
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// Category validates the optional category query parameter: trims, empty means
// "no category", and rejects over-long values.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxCategory {
		return "", false
	}
	return s, true
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

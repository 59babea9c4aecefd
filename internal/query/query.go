// Package query builds store filters from API query parameters.
package query

import "urbanbean/internal/store"

// Products lists in-stock products; a category narrows to products tagged with it.
func Products(category string) store.Filter {
	f := store.Filter{"in_stock": store.Eq{Value: true}}
	if category != "" {
		f["categories"] = store.In{Values: []any{category}}
	}
	return f
}

// Articles has no implicit condition; a category must match exactly.
func Articles(category string) store.Filter {
	f := store.Filter{}
	if category != "" {
		f["category"] = store.Eq{Value: category}
	}
	return f
}

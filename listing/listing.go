// Package listing is the shared filter/sort/search pipeline behind every
// list view (catalog, admin products, orders, users, consultations,
// articles). Each page used to re-implement the same chain of predicate
// passes and an ad-hoc comparator; here it is one declarative Query applied
// to an in-memory slice.
package listing

import (
	"sort"
	"strings"
)

// Wildcard values mean "no filter on this field". "Tất cả" is what the
// storefront UI sends for its default dropdown option.
var wildcards = map[string]bool{
	"":       true,
	"all":    true,
	"tất cả": true,
}

// IsWildcard reports whether a filter value should match everything.
func IsWildcard(v string) bool {
	return wildcards[strings.ToLower(strings.TrimSpace(v))]
}

// Match is an exact-equality filter against one string field, disabled
// when Value is a wildcard.
type Match[T any] struct {
	Value string
	Field func(T) string
}

// Range is an inclusive numeric filter. Max <= 0 means unbounded above.
type Range[T any] struct {
	Min, Max float64
	Field    func(T) float64
}

// Query describes one list view: a free-text search over up to a few
// string fields (OR-combined, case-insensitive substring), equality
// filters, numeric ranges, and an optional comparator.
type Query[T any] struct {
	Search       string
	SearchFields []func(T) string
	Matches      []Match[T]
	Ranges       []Range[T]
	Less         func(a, b T) bool
}

// Apply returns a new slice holding the elements of items that pass every
// filter, ordered by the query comparator. The sort is stable, so elements
// that compare equal keep their input order. items is never mutated.
func Apply[T any](items []T, q Query[T]) []T {
	out := make([]T, 0, len(items))
	search := strings.ToLower(strings.TrimSpace(q.Search))

	for _, item := range items {
		if search != "" && !matchesSearch(item, search, q.SearchFields) {
			continue
		}
		if !matchesFilters(item, q.Matches) {
			continue
		}
		if !matchesRanges(item, q.Ranges) {
			continue
		}
		out = append(out, item)
	}

	if q.Less != nil {
		sort.SliceStable(out, func(i, j int) bool { return q.Less(out[i], out[j]) })
	}
	return out
}

func matchesSearch[T any](item T, search string, fields []func(T) string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(item)), search) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, matches []Match[T]) bool {
	for _, m := range matches {
		if IsWildcard(m.Value) {
			continue
		}
		if !strings.EqualFold(m.Field(item), m.Value) {
			return false
		}
	}
	return true
}

func matchesRanges[T any](item T, ranges []Range[T]) bool {
	for _, r := range ranges {
		v := r.Field(item)
		if v < r.Min {
			return false
		}
		if r.Max > 0 && v > r.Max {
			return false
		}
	}
	return true
}

// ByString builds a lexicographic comparator over a string field,
// case-insensitive, ascending when asc is true.
func ByString[T any](field func(T) string, asc bool) func(a, b T) bool {
	return func(a, b T) bool {
		x, y := strings.ToLower(field(a)), strings.ToLower(field(b))
		if asc {
			return x < y
		}
		return x > y
	}
}

// ByFloat builds a numeric comparator, ascending when asc is true.
func ByFloat[T any](field func(T) float64, asc bool) func(a, b T) bool {
	return func(a, b T) bool {
		if asc {
			return field(a) < field(b)
		}
		return field(a) > field(b)
	}
}

// ByInt builds an integer comparator, ascending when asc is true.
func ByInt[T any](field func(T) int, asc bool) func(a, b T) bool {
	return func(a, b T) bool {
		if asc {
			return field(a) < field(b)
		}
		return field(a) > field(b)
	}
}

// Package query implements the record visibility and query layer shared by
// every collection endpoint: a free-text search combined with exact-match
// field filters over an already-fetched, role-scoped row set, plus the
// defensive ownership check for scoped fetches.
package query

import (
	"sort"
	"strconv"
	"strings"
)

// Config declares which fields of a collection participate in free-text
// search, exact-match filtering and explicit sorting.
type Config struct {
	SearchableFields []string
	FilterableFields []string
	SortableFields   []string
}

// Filterable reports whether the field may be used as an exact-match filter.
func (c Config) Filterable(field string) bool {
	return contains(c.FilterableFields, field)
}

// Sortable reports whether the field may be used as a sort key.
func (c Config) Sortable(field string) bool {
	return contains(c.SortableFields, field)
}

// Record exposes a record's fields to the engine as strings. Absent or nil
// fields must be reported as the empty string, never cause a failure.
// Boolean fields project as "true"/"false" so they can serve as exact-match
// filters while staying out of free-text search.
type Record interface {
	QueryField(name string) (string, bool)
}

// Result is the outcome of applying a query to a scoped row set.
// TotalCount always equals len(Matches); it backs the "total results"
// indicator so the two can never drift apart.
type Result[T Record] struct {
	Matches    []T
	TotalCount int
}

// Apply combines the free-text predicate (case-insensitive substring, OR
// across searchable fields) with the filter predicate (exact equality, AND
// across active filters) and returns the matching rows in input order.
// An empty search and no active filters returns every row. Filters with an
// empty value, or naming a field the config does not declare filterable,
// are inactive.
func Apply[T Record](rows []T, cfg Config, search string, filters map[string]string) Result[T] {
	needle := strings.ToLower(strings.TrimSpace(search))

	active := make(map[string]string, len(filters))
	for field, value := range filters {
		if value == "" || !cfg.Filterable(field) {
			continue
		}
		active[field] = value
	}

	matches := make([]T, 0, len(rows))
	for _, row := range rows {
		if !matchesFilters(row, active) {
			continue
		}
		if needle != "" && !matchesSearch(row, cfg.SearchableFields, needle) {
			continue
		}
		matches = append(matches, row)
	}

	return Result[T]{Matches: matches, TotalCount: len(matches)}
}

// SortBy stable-sorts rows ascending by the given field, leaving ties in
// input order. Values that both parse as numbers compare numerically,
// everything else compares case-insensitively. Rows are returned unchanged
// when the field is empty or not declared sortable; the input slice is never
// mutated.
func SortBy[T Record](rows []T, cfg Config, field string) []T {
	if field == "" || !cfg.Sortable(field) {
		return rows
	}

	sorted := make([]T, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, _ := sorted[i].QueryField(field)
		b, _ := sorted[j].QueryField(field)
		return lessValue(a, b)
	})
	return sorted
}

func matchesSearch[T Record](row T, fields []string, needle string) bool {
	for _, field := range fields {
		value, ok := row.QueryField(field)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}

func matchesFilters[T Record](row T, filters map[string]string) bool {
	for field, want := range filters {
		got, ok := row.QueryField(field)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func lessValue(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return na < nb
	}
	return strings.ToLower(a) < strings.ToLower(b)
}

func contains(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}

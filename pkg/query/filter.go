// Package query implements the stateless catalog query engine: filtering,
// sorting, grouping, pagination, and per-group statistics over catalog
// items. Every operation is pure and synchronous: inputs are never
// mutated, so any number of callers may run queries in parallel against
// the same immutable item snapshot.
package query

import (
	"strings"

	"github.com/bibliofile/bibliofile/pkg/types"
)

// Range is an optional-bounded numeric interval. A nil bound is
// unconstrained; present bounds are inclusive.
type Range struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// Unbounded reports whether neither bound is set.
func (r Range) Unbounded() bool { return r.Min == nil && r.Max == nil }

// contains reports whether f lies within the inclusive bounds.
func (r Range) contains(f float64) bool {
	if r.Min != nil && f < *r.Min {
		return false
	}
	if r.Max != nil && f > *r.Max {
		return false
	}
	return true
}

// FilterByField keeps items whose field equals want. Sequence-valued
// fields match when any element equals want. Items without the field
// never match a non-absent filter value.
func FilterByField(items []*types.CatalogItem, key string, want types.Value) []*types.CatalogItem {
	out := make([]*types.CatalogItem, 0, len(items))
	for _, item := range items {
		if item.Field(key).Contains(want) {
			out = append(out, item)
		}
	}
	return out
}

// FilterByText keeps items whose stringified field value contains the
// query, case-insensitively. An empty query keeps every item: empty
// user-entered text must not filter anything out.
func FilterByText(items []*types.CatalogItem, key, queryText string) []*types.CatalogItem {
	if queryText == "" {
		return items
	}
	needle := strings.ToLower(queryText)
	out := make([]*types.CatalogItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Field(key).String()), needle) {
			out = append(out, item)
		}
	}
	return out
}

// FilterByRange keeps items whose numeric field value lies within r.
// Items with an absent or non-numeric value are excluded from a bounded
// filter. An unbounded range keeps every item.
func FilterByRange(items []*types.CatalogItem, key string, r Range) []*types.CatalogItem {
	if r.Unbounded() {
		return items
	}
	out := make([]*types.CatalogItem, 0, len(items))
	for _, item := range items {
		f, ok := item.Field(key).Float()
		if !ok {
			continue
		}
		if r.contains(f) {
			out = append(out, item)
		}
	}
	return out
}

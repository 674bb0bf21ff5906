package query

import (
	"github.com/bibliofile/bibliofile/pkg/types"
)

// Group is one bucket of a grouping: the shared key and the items that
// carry it. An Absent key collects the items without a usable value.
type Group struct {
	Key   types.Value
	Items []*types.CatalogItem
}

// GroupResult is an ordered set of groups. Order is first-seen order of
// distinct keys during a single left-to-right scan of the input.
type GroupResult []Group

// TotalItems returns the number of item memberships across all groups.
// With multi-valued fields one item can count more than once.
func (g GroupResult) TotalItems() int {
	total := 0
	for _, grp := range g {
		total += len(grp.Items)
	}
	return total
}

// keyOf renders a value as a bucket identity. String and date values
// share a text identity, mirroring Value.Equal.
func keyOf(v types.Value) string {
	switch v.Kind() {
	case types.KindString, types.KindDate:
		return "s:" + v.String()
	case types.KindNumber:
		return "n:" + v.String()
	case types.KindBool:
		return "b:" + v.String()
	default:
		return ""
	}
}

// GroupByField partitions items by the value of the given field. Items
// whose field is absent, failed coercion, or is an empty sequence land
// in the Absent-keyed group; no item is ever dropped. Sequence values
// give multi-membership, one per distinct element. Coercion guarantees
// that schema-scalar fields never hold sequences, so scalar fields group
// by their literal value.
func GroupByField(items []*types.CatalogItem, key string) GroupResult {
	index := make(map[string]int)
	var result GroupResult

	add := func(groupKey types.Value, item *types.CatalogItem) {
		id := keyOf(groupKey)
		i, ok := index[id]
		if !ok {
			i = len(result)
			index[id] = i
			result = append(result, Group{Key: groupKey})
		}
		result[i].Items = append(result[i].Items, item)
	}

	for _, item := range items {
		v := item.Field(key)
		switch {
		case v.Kind() == types.KindSeq:
			elems := v.Elems()
			if len(elems) == 0 {
				add(types.Absent(), item)
				continue
			}
			seen := make(map[string]bool, len(elems))
			for _, e := range elems {
				norm := groupKey(e)
				id := keyOf(norm)
				if seen[id] {
					continue
				}
				seen[id] = true
				add(norm, item)
			}
		default:
			add(groupKey(v), item)
		}
	}
	return result
}

// groupKey normalizes a scalar value into a bucket key. Values without a
// usable payload collapse into the Absent key.
func groupKey(v types.Value) types.Value {
	if v.IsAbsent() || (v.Kind() == types.KindNumber && !v.IsNumeric()) {
		return types.Absent()
	}
	return v
}

// UniqueValues returns the distinct values of a field across all items,
// in first-seen order. Sequence fields contribute their individual
// elements; absent values do not contribute.
func UniqueValues(items []*types.CatalogItem, key string) []types.Value {
	seen := make(map[string]bool)
	var out []types.Value

	add := func(v types.Value) {
		v = groupKey(v)
		if v.IsAbsent() {
			return
		}
		id := keyOf(v)
		if seen[id] {
			return
		}
		seen[id] = true
		out = append(out, v)
	}

	for _, item := range items {
		v := item.Field(key)
		if v.Kind() == types.KindSeq {
			for _, e := range v.Elems() {
				add(e)
			}
			continue
		}
		add(v)
	}
	return out
}

// GroupCount pairs a group key with its bucket size.
type GroupCount struct {
	Key   types.Value
	Count int
}

// CountByField returns the size of each GroupByField bucket, in the same
// first-seen order.
func CountByField(items []*types.CatalogItem, key string) []GroupCount {
	groups := GroupByField(items, key)
	counts := make([]GroupCount, len(groups))
	for i, g := range groups {
		counts[i] = GroupCount{Key: g.Key, Count: len(g.Items)}
	}
	return counts
}

package query

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/bibliofile/bibliofile/pkg/types"
)

// SortByField returns a new slice of items stably sorted by the given
// field. Numeric values compare numerically, everything else compares as
// collated text. Values that are absent (or failed numeric coercion)
// rank lowest, so they surface first ascending and last descending;
// heterogeneous data never makes the sort fail.
func SortByField(items []*types.CatalogItem, key string, descending bool) []*types.CatalogItem {
	out := make([]*types.CatalogItem, len(items))
	copy(out, items)

	// Collators are not safe for concurrent use, so each sort owns one.
	c := collate.New(language.Und)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareValues(c, out[i].Field(key), out[j].Field(key))
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// compareValues orders two field values: lowest-ranked are values with
// no usable payload, then numbers numerically, then collated text.
func compareValues(c *collate.Collator, a, b types.Value) int {
	af, aNum := a.Float()
	bf, bNum := b.Float()
	aEmpty := a.IsAbsent() || (a.Kind() == types.KindNumber && !aNum)
	bEmpty := b.IsAbsent() || (b.Kind() == types.KindNumber && !bNum)

	switch {
	case aEmpty && bEmpty:
		return 0
	case aEmpty:
		return -1
	case bEmpty:
		return 1
	case aNum && bNum:
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	default:
		return c.CompareString(a.String(), b.String())
	}
}

package query

import "github.com/bibliofile/bibliofile/pkg/types"

// Statistics aggregates a record subset: the item count, the sum and
// average of a numeric field, and the min/max range of another field.
type Statistics struct {
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Range   Range   `json:"range"`
}

// CalculateStatusStats computes Statistics over items. Count covers
// every item. Items with an absent or non-numeric value under numericKey
// contribute nothing to the total and are excluded from the average
// denominator; an all-absent input yields average 0 rather than a
// divide-by-zero fault. Range bounds come from rangeKey and are nil when
// no item defines it.
func CalculateStatusStats(items []*types.CatalogItem, numericKey, rangeKey string) Statistics {
	stats := Statistics{Count: len(items)}

	defined := 0
	for _, item := range items {
		f, ok := item.Field(numericKey).Float()
		if !ok {
			continue
		}
		stats.Total += f
		defined++
	}
	if defined > 0 {
		stats.Average = stats.Total / float64(defined)
	}

	for _, item := range items {
		f, ok := item.Field(rangeKey).Float()
		if !ok {
			continue
		}
		v := f
		if stats.Range.Min == nil || v < *stats.Range.Min {
			stats.Range.Min = &v
		}
		if stats.Range.Max == nil || v > *stats.Range.Max {
			stats.Range.Max = &v
		}
	}
	return stats
}

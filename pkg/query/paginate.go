package query

import "github.com/bibliofile/bibliofile/pkg/types"

// Paginate returns the half-open page slice
// [pageIndex*pageSize, (pageIndex+1)*pageSize) clipped to bounds. An
// out-of-range page index or a non-positive page size returns an empty
// slice, never an error.
func Paginate(items []*types.CatalogItem, pageSize, pageIndex int) []*types.CatalogItem {
	if pageSize <= 0 || pageIndex < 0 {
		return []*types.CatalogItem{}
	}
	start := pageIndex * pageSize
	if start >= len(items) {
		return []*types.CatalogItem{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// PageCount returns the number of pages needed to show n items.
func PageCount(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

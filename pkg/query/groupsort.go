package query

import "sort"

// Group ordering strategies for status dashboards.
const (
	GroupSortAlphabetical = "alphabetical"
	GroupSortCountDesc    = "count-desc"
	GroupSortCountAsc     = "count-asc"
)

// SortStatusGroups returns the groups ordered by the named strategy:
// alphabetical by stringified key, or by bucket size descending or
// ascending with an alphabetical tie-break so equal counts order
// deterministically. An unknown mode falls back to count-desc; a
// cosmetic input never raises an error.
func SortStatusGroups(groups GroupResult, mode string) GroupResult {
	out := make(GroupResult, len(groups))
	copy(out, groups)

	switch mode {
	case GroupSortAlphabetical:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Key.String() < out[j].Key.String()
		})
	case GroupSortCountAsc:
		sort.SliceStable(out, func(i, j int) bool {
			if len(out[i].Items) != len(out[j].Items) {
				return len(out[i].Items) < len(out[j].Items)
			}
			return out[i].Key.String() < out[j].Key.String()
		})
	default: // GroupSortCountDesc and anything unrecognized
		sort.SliceStable(out, func(i, j int) bool {
			if len(out[i].Items) != len(out[j].Items) {
				return len(out[i].Items) > len(out[j].Items)
			}
			return out[i].Key.String() < out[j].Key.String()
		})
	}
	return out
}

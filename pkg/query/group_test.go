package query

import (
	"testing"

	"github.com/bibliofile/bibliofile/pkg/types"
)

func TestGroupByFieldScalar(t *testing.T) {
	items := gothicCatalog()
	groups := GroupByField(items, "catalog-status")

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// First-seen order: fixture opens with a published entry.
	if groups[0].Key.String() != "published" || len(groups[0].Items) != 12 {
		t.Errorf("group 0 = %q (%d items), want published with 12", groups[0].Key.String(), len(groups[0].Items))
	}
	if groups[1].Key.String() != "draft" || len(groups[1].Items) != 3 {
		t.Errorf("group 1 = %q (%d items), want draft with 3", groups[1].Key.String(), len(groups[1].Items))
	}
	// Conservation: scalar grouping accounts for every item exactly once.
	if groups.TotalItems() != len(items) {
		t.Errorf("TotalItems() = %d, want %d", groups.TotalItems(), len(items))
	}
}

func TestGroupByFieldAbsentBucket(t *testing.T) {
	items := gothicCatalog()
	groups := GroupByField(items, "year-published")

	var absent *Group
	total := 0
	for i := range groups {
		total += len(groups[i].Items)
		if groups[i].Key.IsAbsent() {
			absent = &groups[i]
		}
	}
	if absent == nil {
		t.Fatal("no Absent-keyed group for the yearless entry")
	}
	if len(absent.Items) != 1 || absent.Items[0].ID() != "haunter" {
		t.Errorf("absent bucket = %v", ids(absent.Items))
	}
	if total != len(items) {
		t.Errorf("grouping dropped items: %d != %d", total, len(items))
	}
}

func TestGroupByFieldMultiMembership(t *testing.T) {
	items := gothicCatalog()
	groups := GroupByField(items, "genres")

	index := make(map[string]int)
	for _, g := range groups {
		index[g.Key.String()] = len(g.Items)
	}
	if index["gothic"] != 9 {
		t.Errorf("gothic bucket = %d, want 9", index["gothic"])
	}
	if index["short-story"] != 4 {
		t.Errorf("short-story bucket = %d, want 4", index["short-story"])
	}
	// Multi-valued conservation: every membership counted at least once
	// per item, and usher appears in both of its genre buckets.
	if groups.TotalItems() < len(items) {
		t.Errorf("TotalItems() = %d, want >= %d", groups.TotalItems(), len(items))
	}
}

func TestGroupByFieldDuplicateElementsCountOnce(t *testing.T) {
	item := types.NewCatalogItem("dup", "dup.md")
	item.SetField("tags", types.Seq([]types.Value{types.String("x"), types.String("x")}))
	groups := GroupByField([]*types.CatalogItem{item}, "tags")
	if len(groups) != 1 || len(groups[0].Items) != 1 {
		t.Errorf("duplicate sequence elements must not duplicate membership: %+v", groups)
	}
}

func TestGroupByFieldEmptySequence(t *testing.T) {
	item := types.NewCatalogItem("empty", "empty.md")
	item.SetField("tags", types.Seq(nil))
	groups := GroupByField([]*types.CatalogItem{item}, "tags")
	if len(groups) != 1 || !groups[0].Key.IsAbsent() {
		t.Errorf("empty sequence must land in the absent bucket, got %+v", groups)
	}
}

func TestGroupByUnknownFieldGroupsEverythingUnderAbsent(t *testing.T) {
	items := gothicCatalog()
	groups := GroupByField(items, "no-such-field")
	if len(groups) != 1 || !groups[0].Key.IsAbsent() || len(groups[0].Items) != len(items) {
		t.Errorf("unknown field must yield one absent group with all items, got %d groups", len(groups))
	}
}

func TestUniqueValues(t *testing.T) {
	items := gothicCatalog()

	authors := UniqueValues(items, "author")
	if len(authors) != 3 {
		t.Fatalf("got %d authors, want 3", len(authors))
	}
	// First-seen order.
	if authors[0].String() != "H. P. Lovecraft" || authors[1].String() != "Edgar Allan Poe" {
		t.Errorf("author order = %v, %v", authors[0], authors[1])
	}

	genres := UniqueValues(items, "genres")
	seen := make(map[string]bool)
	for _, g := range genres {
		if seen[g.String()] {
			t.Errorf("duplicate unique value %q", g.String())
		}
		seen[g.String()] = true
	}
	if !seen["vampire"] || !seen["cosmic-horror"] {
		t.Errorf("sequence elements must contribute, got %v", seen)
	}
}

func TestCountByField(t *testing.T) {
	items := gothicCatalog()
	counts := CountByField(items, "catalog-status")
	groups := GroupByField(items, "catalog-status")
	if len(counts) != len(groups) {
		t.Fatalf("counts %d vs groups %d", len(counts), len(groups))
	}
	for i := range counts {
		if counts[i].Count != len(groups[i].Items) {
			t.Errorf("count[%d] = %d, want %d", i, counts[i].Count, len(groups[i].Items))
		}
	}
}

package query

import (
	"testing"

	"github.com/bibliofile/bibliofile/pkg/types"
)

func TestFilterByField(t *testing.T) {
	items := gothicCatalog()

	t.Run("scalar match", func(t *testing.T) {
		got := FilterByField(items, "author", types.String("Sheridan Le Fanu"))
		if len(got) != 4 {
			t.Fatalf("got %d items, want 4", len(got))
		}
		for _, item := range got {
			if item.Field("author").String() != "Sheridan Le Fanu" {
				t.Errorf("item %s has author %q", item.ID(), item.Field("author").String())
			}
		}
	})

	t.Run("sequence membership", func(t *testing.T) {
		got := FilterByField(items, "genres", types.String("vampire"))
		if len(got) != 1 || got[0].ID() != "carmilla" {
			t.Fatalf("got %v, want only carmilla", ids(got))
		}
	})

	t.Run("absent field never matches", func(t *testing.T) {
		got := FilterByField(items, "translator", types.String("anyone"))
		if len(got) != 0 {
			t.Errorf("got %d items, want 0", len(got))
		}
	})

	t.Run("conservation: kept plus excluded equals input", func(t *testing.T) {
		kept := FilterByField(items, "catalog-status", types.String("draft"))
		excluded := 0
		for _, item := range items {
			if item.Field("catalog-status").String() != "draft" {
				excluded++
			}
		}
		if len(kept)+excluded != len(items) {
			t.Errorf("kept %d + excluded %d != %d", len(kept), excluded, len(items))
		}
	})
}

func TestFilterByText(t *testing.T) {
	items := gothicCatalog()

	t.Run("case-insensitive substring", func(t *testing.T) {
		got := FilterByText(items, "title", "HOUSE")
		if len(got) != 2 {
			t.Fatalf("got %v, want usher and churchyard", ids(got))
		}
	})

	t.Run("empty query keeps all items", func(t *testing.T) {
		got := FilterByText(items, "title", "")
		if len(got) != len(items) {
			t.Errorf("got %d items, want %d", len(got), len(items))
		}
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		got := FilterByText(items, "title", "zzzz")
		if len(got) != 0 {
			t.Errorf("got %d items, want 0", len(got))
		}
	})
}

func TestFilterByRange(t *testing.T) {
	items := gothicCatalog()

	t.Run("nineteenth century window", func(t *testing.T) {
		got := FilterByRange(items, "year-published", Range{Min: fptr(1800), Max: fptr(1900)})
		if len(got) != 9 {
			t.Fatalf("got %d items (%v), want 9", len(got), ids(got))
		}
		for _, item := range got {
			y, _ := item.Field("year-published").Float()
			if y < 1800 || y > 1900 {
				t.Errorf("item %s year %v outside [1800,1900]", item.ID(), y)
			}
			if y == 1928 || y == 1942 {
				t.Errorf("item %s from %v must be excluded", item.ID(), y)
			}
		}
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		got := FilterByRange(items, "year-published", Range{Min: fptr(1928), Max: fptr(1928)})
		if len(got) != 1 || got[0].ID() != "cthulhu" {
			t.Fatalf("got %v, want only cthulhu", ids(got))
		}
	})

	t.Run("min only", func(t *testing.T) {
		got := FilterByRange(items, "year-published", Range{Min: fptr(1930)})
		if len(got) != 3 {
			t.Errorf("got %v, want 3 items from 1936/1936/1942", ids(got))
		}
	})

	t.Run("unbounded range keeps everything", func(t *testing.T) {
		got := FilterByRange(items, "year-published", Range{})
		if len(got) != len(items) {
			t.Errorf("got %d items, want %d", len(got), len(items))
		}
	})

	t.Run("absent and non-numeric excluded from bounded filter", func(t *testing.T) {
		extra := types.NewCatalogItem("bad-year", "catalog/bad-year.md")
		extra.SetField("year-published", types.Number(nan))
		all := append(gothicCatalog(), extra)
		got := FilterByRange(all, "year-published", Range{Min: fptr(0), Max: fptr(3000)})
		for _, item := range got {
			if item.ID() == "bad-year" || item.ID() == "haunter" {
				t.Errorf("item %s must be excluded from a bounded range", item.ID())
			}
		}
	})
}

func ids(items []*types.CatalogItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID()
	}
	return out
}

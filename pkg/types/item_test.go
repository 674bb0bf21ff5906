package types

import "testing"

func TestCatalogItemFields(t *testing.T) {
	item := NewCatalogItem("isbn-1", "catalog/call-of-cthulhu.md")
	item.SetField("title", String("The Call of Cthulhu"))
	item.SetField("year-published", Number(1928))
	item.SetField("summary", Absent())

	if item.ID() != "isbn-1" {
		t.Errorf("ID() = %q", item.ID())
	}
	if item.SourceFile() != "catalog/call-of-cthulhu.md" {
		t.Errorf("SourceFile() = %q", item.SourceFile())
	}
	if got := item.Field("title").String(); got != "The Call of Cthulhu" {
		t.Errorf("Field(title) = %q", got)
	}
	if !item.Field("missing").IsAbsent() {
		t.Error("Field(missing) must be Absent")
	}
	if !item.HasField("title") {
		t.Error("HasField(title) = false")
	}
	if item.HasField("summary") {
		t.Error("HasField on an absent-coerced field must be false")
	}
	if item.HasField("missing") {
		t.Error("HasField(missing) = true")
	}
}

func TestCatalogItemToObject(t *testing.T) {
	item := NewCatalogItem("isbn-1", "a.md")
	item.SetField("title", String("Carmilla"))
	item.SetField("summary", Absent())

	obj := item.ToObject()
	if obj["id"] != "isbn-1" || obj["source_file"] != "a.md" {
		t.Errorf("ToObject() identity = %v / %v", obj["id"], obj["source_file"])
	}
	if obj["title"] != "Carmilla" {
		t.Errorf("ToObject()[title] = %v", obj["title"])
	}
	if _, ok := obj["summary"]; ok {
		t.Error("ToObject() must omit absent fields")
	}
}

func TestFallbackItemIDDeterministic(t *testing.T) {
	a := FallbackItemID("catalog/carmilla.md")
	b := FallbackItemID("catalog/carmilla.md")
	c := FallbackItemID("catalog/the-raven.md")
	if a != b {
		t.Errorf("FallbackItemID is not deterministic: %q != %q", a, b)
	}
	if a == c {
		t.Error("distinct identities must map to distinct IDs")
	}
}

package types

import (
	"github.com/google/uuid"
)

// CatalogItem is one typed, coerced record derived from a single source
// document. Items are built fresh on every reload cycle and published as
// immutable snapshots: once an item reaches the store it is replaced,
// never mutated, so concurrent readers cannot observe a half-updated
// record.
type CatalogItem struct {
	id         string
	sourceFile string
	fields     map[string]Value
}

// NewCatalogItem creates an empty item with the given identity and
// source document path.
func NewCatalogItem(id, sourceFile string) *CatalogItem {
	return &CatalogItem{
		id:         id,
		sourceFile: sourceFile,
		fields:     make(map[string]Value),
	}
}

// ID returns the item identity.
func (c *CatalogItem) ID() string { return c.id }

// SourceFile returns the identity of the document this item was built from.
func (c *CatalogItem) SourceFile() string { return c.sourceFile }

// Field returns the value stored under key, or Absent when the key is
// not set. Absent entries and missing entries are indistinguishable to
// readers, matching the absent-field degradation used by coercion.
func (c *CatalogItem) Field(key string) Value {
	v, ok := c.fields[key]
	if !ok {
		return Absent()
	}
	return v
}

// HasField reports whether the item carries a non-absent value for key.
func (c *CatalogItem) HasField(key string) bool {
	v, ok := c.fields[key]
	return ok && !v.IsAbsent()
}

// SetField stores a value under key. SetField is a construction-time
// operation only; callers must not modify an item after it has been
// published to the store.
func (c *CatalogItem) SetField(key string, v Value) {
	c.fields[key] = v
}

// FieldKeys returns the keys of all set fields, in no particular order.
func (c *CatalogItem) FieldKeys() []string {
	keys := make([]string, 0, len(c.fields))
	for k := range c.fields {
		keys = append(keys, k)
	}
	return keys
}

// ToObject returns a plain key to value snapshot for serialization and
// debugging. Absent fields are omitted.
func (c *CatalogItem) ToObject() map[string]any {
	obj := make(map[string]any, len(c.fields)+2)
	obj["id"] = c.id
	obj["source_file"] = c.sourceFile
	for k, v := range c.fields {
		if v.IsAbsent() {
			continue
		}
		obj[k] = v.String()
	}
	return obj
}

// fallbackNamespace scopes deterministic item IDs derived from document
// identities.
var fallbackNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("bibliofile/catalog-item"))

// FallbackItemID derives a stable item identity from a source document
// identity. Used when the schema's id field is absent from a record; the
// result is deterministic across reloads so selection state and per-item
// caches keyed by ID survive a reload.
func FallbackItemID(identity string) string {
	return uuid.NewSHA1(fallbackNamespace, []byte(identity)).String()
}

package loader

import (
	"log/slog"

	"github.com/bibliofile/bibliofile/internal/vault"
	"github.com/bibliofile/bibliofile/pkg/types"
)

// buildItems coerces a scanned document set into catalog items. Only
// schema-declared fields are extracted; per-field coercion failures
// degrade to absent values and the document stays in the set.
func buildItems(docs []vault.Document, schema types.CatalogSchema, log *slog.Logger) []*types.CatalogItem {
	items := make([]*types.CatalogItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, buildItem(doc, schema, log))
	}
	return items
}

func buildItem(doc vault.Document, schema types.CatalogSchema, log *slog.Logger) *types.CatalogItem {
	item := types.NewCatalogItem(itemID(doc, schema), doc.Identity)
	for _, f := range schema.Fields {
		raw, ok := doc.Fields[f.Key]
		if !ok {
			continue
		}
		v := types.CoerceField(raw, f)
		if v.IsAbsent() && raw != nil {
			log.Debug("field coercion failed, value dropped",
				"document", doc.Identity, "field", f.Key, "type", f.Type)
		}
		item.SetField(f.Key, v)
	}
	return item
}

// itemID derives the item identity from the schema's id field when the
// document carries it, else falls back to a deterministic identity
// derived from the document itself, so IDs stay stable across reloads.
func itemID(doc vault.Document, schema types.CatalogSchema) string {
	if schema.Core.IDField != "" {
		if raw, ok := doc.Fields[schema.Core.IDField]; ok {
			if f, found := schema.Field(schema.Core.IDField); found {
				if v := types.CoerceField(raw, f); !v.IsAbsent() && v.String() != "" {
					return v.String()
				}
			}
		}
	}
	return types.FallbackItemID(doc.Identity)
}

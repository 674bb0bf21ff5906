// Catalog schema loading for the shelf CLI.
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bibliofile/bibliofile/pkg/types"
)

// defaultSchemaYAML is the starter schema written by shelf init: a small
// book catalog keyed by ISBN.
const defaultSchemaYAML = `# Shelf catalog schema
catalog_name: library
core:
  title_field: title
  id_field: isbn
  status_field: catalog-status
fields:
  - key: isbn
    label: ISBN
    type: string
    visible: true
    sort_order: 5
  - key: title
    label: Title
    type: string
    visible: true
    sortable: true
    sort_order: 1
  - key: author
    label: Author
    type: string
    visible: true
    filterable: true
    sortable: true
    sort_order: 2
  - key: year-published
    label: Year
    type: number
    visible: true
    filterable: true
    sortable: true
    sort_order: 3
  - key: catalog-status
    label: Status
    type: string
    visible: true
    filterable: true
    sort_order: 4
  - key: genres
    label: Genres
    type: array
    filterable: true
    array_item_type: string
`

// loadSchema reads and validates the catalog schema from a YAML file.
func loadSchema(path string) (types.CatalogSchema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.CatalogSchema{}, fmt.Errorf("reading schema %s: %w", path, err)
	}
	var schema types.CatalogSchema
	if err := yaml.Unmarshal(content, &schema); err != nil {
		return types.CatalogSchema{}, fmt.Errorf("parsing schema %s: %w", path, err)
	}
	if err := schema.Validate(); err != nil {
		return types.CatalogSchema{}, fmt.Errorf("invalid schema %s: %w", path, err)
	}
	return schema, nil
}

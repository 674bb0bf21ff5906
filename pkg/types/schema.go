// Package types defines the catalog schema, the tagged field value variant,
// the CatalogItem record, and the standard errors shared across bibliofile.
package types

import "errors"

// Field types determine how raw frontmatter values are coerced.
type FieldType string

const (
	FieldTypeString         FieldType = "string"
	FieldTypeNumber         FieldType = "number"
	FieldTypeDate           FieldType = "date"
	FieldTypeBoolean        FieldType = "boolean"
	FieldTypeArray          FieldType = "array"
	FieldTypeReferenceArray FieldType = "reference-array"
	FieldTypeObject         FieldType = "object"
)

// validFieldTypes is the set of recognized field types.
var validFieldTypes = map[FieldType]bool{
	FieldTypeString:         true,
	FieldTypeNumber:         true,
	FieldTypeDate:           true,
	FieldTypeBoolean:        true,
	FieldTypeArray:          true,
	FieldTypeReferenceArray: true,
	FieldTypeObject:         true,
}

// IsValidFieldType reports whether the given type is recognized.
func IsValidFieldType(t FieldType) bool {
	return validFieldTypes[t]
}

// IsSequenceType reports whether values of the given type coerce to
// sequences. Scalar-typed fields never hold a sequence after coercion.
func IsSequenceType(t FieldType) bool {
	return t == FieldTypeArray || t == FieldTypeReferenceArray
}

// SchemaField declares one named, typed column available across a
// catalog's items. Keys are unique within a schema.
type SchemaField struct {
	Key           string    `yaml:"key" json:"key"`
	Label         string    `yaml:"label" json:"label"`
	Type          FieldType `yaml:"type" json:"type"`
	Category      string    `yaml:"category" json:"category"`
	Visible       bool      `yaml:"visible" json:"visible"`
	Filterable    bool      `yaml:"filterable" json:"filterable"`
	Sortable      bool      `yaml:"sortable" json:"sortable"`
	SortOrder     int       `yaml:"sort_order" json:"sort_order"`
	ArrayItemType FieldType `yaml:"array_item_type,omitempty" json:"array_item_type,omitempty"`
}

// CoreFields names the schema fields with special roles. IDField and
// TitleField are required; StatusField is optional.
type CoreFields struct {
	TitleField  string `yaml:"title_field" json:"title_field"`
	IDField     string `yaml:"id_field" json:"id_field"`
	StatusField string `yaml:"status_field,omitempty" json:"status_field,omitempty"`
}

// CatalogSchema describes the shape of every item in one catalog.
type CatalogSchema struct {
	CatalogName string        `yaml:"catalog_name" json:"catalog_name"`
	Fields      []SchemaField `yaml:"fields" json:"fields"`
	Core        CoreFields    `yaml:"core" json:"core"`
}

// Schema validation errors. Validation runs at schema-load time; query
// operations never validate.
var (
	ErrCatalogNameEmpty  = errors.New("catalog name must not be empty")
	ErrFieldKeyEmpty     = errors.New("field key must not be empty")
	ErrDuplicateFieldKey = errors.New("duplicate field key")
	ErrInvalidFieldType  = errors.New("invalid field type")
	ErrIDFieldMissing    = errors.New("id field is not declared in fields")
	ErrTitleFieldMissing = errors.New("title field is not declared in fields")
)

// Validate checks that the schema is well-formed: non-empty catalog name,
// unique non-empty field keys, recognized field types, and core id/title
// fields named and declared among Fields. Individual records may still
// omit the id field; they get a deterministic fallback identity.
// Returns a sentinel error on failure.
func (s CatalogSchema) Validate() error {
	if s.CatalogName == "" {
		return ErrCatalogNameEmpty
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Key == "" {
			return ErrFieldKeyEmpty
		}
		if seen[f.Key] {
			return ErrDuplicateFieldKey
		}
		seen[f.Key] = true
		if !IsValidFieldType(f.Type) {
			return ErrInvalidFieldType
		}
	}
	if s.Core.IDField == "" || !seen[s.Core.IDField] {
		return ErrIDFieldMissing
	}
	if s.Core.TitleField == "" || !seen[s.Core.TitleField] {
		return ErrTitleFieldMissing
	}
	return nil
}

// Field returns the declared field with the given key.
func (s CatalogSchema) Field(key string) (SchemaField, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return SchemaField{}, false
}

// FieldKeys returns all declared field keys in declaration order.
func (s CatalogSchema) FieldKeys() []string {
	keys := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// VisibleFields returns the visible fields ordered by SortOrder ascending.
// Fields with equal SortOrder keep their declaration order.
func (s CatalogSchema) VisibleFields() []SchemaField {
	visible := make([]SchemaField, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Visible {
			visible = append(visible, f)
		}
	}
	// Insertion sort keeps the declaration order for equal SortOrder.
	for i := 1; i < len(visible); i++ {
		for j := i; j > 0 && visible[j].SortOrder < visible[j-1].SortOrder; j-- {
			visible[j], visible[j-1] = visible[j-1], visible[j]
		}
	}
	return visible
}

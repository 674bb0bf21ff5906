// Package sqlite dumps a published catalog snapshot into a SQLite file
// for external tooling. The dump is write-only from the engine's point
// of view: browsing and querying always run in memory over the current
// snapshot, never against this file.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/bibliofile/bibliofile/internal/loader"
	"github.com/bibliofile/bibliofile/pkg/types"
)

// ExportSnapshot writes one row per catalog item into path, one column
// per visible schema field, plus a meta table recording the catalog
// name and the snapshot revision. An existing export at path is
// replaced wholesale, mirroring the whole-set swap the store performs
// in memory.
func ExportSnapshot(path string, schema types.CatalogSchema, snap loader.Snapshot) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening export database: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback()

	fields := schema.VisibleFields()
	if err := createTables(tx, fields); err != nil {
		return err
	}
	if err := writeMeta(tx, schema.CatalogName, snap.Revision); err != nil {
		return err
	}
	if err := writeItems(tx, fields, snap.Items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

func createTables(tx *sql.Tx, fields []types.SchemaField) error {
	stmts := []string{
		`DROP TABLE IF EXISTS catalog_items`,
		`DROP TABLE IF EXISTS catalog_meta`,
		`CREATE TABLE catalog_meta (
			catalog_name TEXT NOT NULL,
			revision INTEGER NOT NULL
		)`,
		itemsDDL(fields),
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("creating export tables: %w", err)
		}
	}
	return nil
}

// itemsDDL builds the catalog_items table: identity columns plus one
// column per visible field, typed by the field's declared type.
func itemsDDL(fields []types.SchemaField) string {
	cols := []string{
		"item_id TEXT PRIMARY KEY",
		"source_file TEXT NOT NULL",
	}
	for _, f := range fields {
		cols = append(cols, fmt.Sprintf("%q %s", columnName(f.Key), columnType(f.Type)))
	}
	return fmt.Sprintf("CREATE TABLE catalog_items (%s)", strings.Join(cols, ", "))
}

func columnName(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

func columnType(t types.FieldType) string {
	switch t {
	case types.FieldTypeNumber:
		return "REAL"
	case types.FieldTypeBoolean:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

func writeMeta(tx *sql.Tx, catalogName string, revision uint64) error {
	if _, err := tx.Exec(
		"INSERT INTO catalog_meta (catalog_name, revision) VALUES (?, ?)",
		catalogName, revision,
	); err != nil {
		return fmt.Errorf("writing export meta: %w", err)
	}
	return nil
}

func writeItems(tx *sql.Tx, fields []types.SchemaField, items []*types.CatalogItem) error {
	cols := []string{"item_id", "source_file"}
	for _, f := range fields {
		cols = append(cols, fmt.Sprintf("%q", columnName(f.Key)))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO catalog_items (%s) VALUES (%s)",
		strings.Join(cols, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("preparing item insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		args := make([]any, 0, len(cols))
		args = append(args, item.ID(), item.SourceFile())
		for _, f := range fields {
			args = append(args, columnValue(item.Field(f.Key)))
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting item %s: %w", item.ID(), err)
		}
	}
	return nil
}

// columnValue maps a field value to its SQL representation. Absent and
// failed-coercion values export as NULL.
func columnValue(v types.Value) any {
	switch v.Kind() {
	case types.KindAbsent:
		return nil
	case types.KindNumber:
		f, ok := v.Float()
		if !ok {
			return nil
		}
		return f
	case types.KindBool:
		if v.Bool() {
			return 1
		}
		return 0
	default:
		return v.String()
	}
}

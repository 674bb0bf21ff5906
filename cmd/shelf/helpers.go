// Shared helpers for shelf subcommands: catalog loading, filter value
// parsing, and output rendering.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/bibliofile/bibliofile/internal/loader"
	"github.com/bibliofile/bibliofile/internal/vault"
	"github.com/bibliofile/bibliofile/pkg/types"
)

// newLogger builds the CLI logger. Warnings and errors only; reload
// chatter stays out of command output.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// openCatalog loads the schema and runs one synchronous reload cycle,
// returning the loader and the published snapshot.
func openCatalog(ctx context.Context) (*loader.Loader, types.CatalogSchema, loader.Snapshot, error) {
	schema, err := loadSchema(cfg.SchemaFile)
	if err != nil {
		return nil, types.CatalogSchema{}, loader.Snapshot{}, err
	}
	scanner := vault.NewScanner(cfg.VaultDir, newLogger())
	l := loader.New(scanner, schema, newLogger())
	if err := l.Refresh(ctx); err != nil {
		return nil, types.CatalogSchema{}, loader.Snapshot{}, fmt.Errorf("loading catalog: %w", err)
	}
	return l, schema, l.Snapshot(), nil
}

// parseFilterArg splits one key=value filter argument.
func parseFilterArg(arg string) (string, string, error) {
	key, value, found := strings.Cut(arg, "=")
	if !found || key == "" {
		return "", "", fmt.Errorf("invalid filter %q, expected key=value", arg)
	}
	return key, value, nil
}

// filterValue coerces a user-entered filter string against the field's
// declared type, so equality filtering compares like with like. Sequence
// fields coerce to their element type. Unknown keys keep the raw text:
// stale filter configuration degrades to an empty result, not a fault.
func filterValue(schema types.CatalogSchema, key, raw string) types.Value {
	f, ok := schema.Field(key)
	if !ok {
		return types.String(raw)
	}
	t := f.Type
	if types.IsSequenceType(t) {
		t = f.ArrayItemType
		if t == "" {
			t = types.FieldTypeString
		}
	}
	return types.Coerce(raw, t)
}

// printItems renders items as a table of visible schema fields, or as
// JSON objects with --json.
func printItems(items []*types.CatalogItem, schema types.CatalogSchema, compact bool) error {
	if flagJSON {
		objs := make([]map[string]any, len(items))
		for i, item := range items {
			objs[i] = item.ToObject()
		}
		return printJSON(objs)
	}

	fields := schema.VisibleFields()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if !compact {
		headers := make([]string, len(fields))
		for i, f := range fields {
			headers[i] = strings.ToUpper(fieldLabel(f))
		}
		fmt.Fprintln(w, strings.Join(headers, "\t"))
	}
	for _, item := range items {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = item.Field(f.Key).String()
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func fieldLabel(f types.SchemaField) string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// groupLabel names a group key for display; the absent bucket prints as
// "(none)".
func groupLabel(key types.Value) string {
	if key.IsAbsent() {
		return "(none)"
	}
	return key.String()
}

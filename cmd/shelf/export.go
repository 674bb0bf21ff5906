// Export command: dump the current snapshot to SQLite.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bibliofile/bibliofile/internal/sqlite"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current catalog snapshot to a SQLite file",
	Long: `Export writes the catalog's current snapshot into a SQLite database:
one row per item, one column per visible schema field, plus a meta table
with the catalog name and revision. An existing file is replaced.

The export is a dump for external tooling; shelf itself always queries
the in-memory snapshot.

Example:
  shelf export --out catalog.db`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "catalog.db", "output SQLite file")
}

func runExport(cmd *cobra.Command, args []string) error {
	l, schema, snap, err := openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer l.Close()

	if err := sqlite.ExportSnapshot(exportOut, schema, snap); err != nil {
		return fmt.Errorf("exporting snapshot: %w", err)
	}
	fmt.Printf("exported revision %d (%d items) to %s\n", snap.Revision, len(snap.Items), exportOut)
	return nil
}

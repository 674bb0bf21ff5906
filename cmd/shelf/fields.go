// Fields command: show the validated catalog schema.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Show the catalog schema fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := loadSchema(cfg.SchemaFile)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(schema)
		}

		fmt.Printf("catalog: %s\n", schema.CatalogName)
		fmt.Printf("title field: %s  id field: %s  status field: %s\n\n",
			schema.Core.TitleField, orDash(schema.Core.IDField), orDash(schema.Core.StatusField))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tLABEL\tTYPE\tFLAGS")
		for _, f := range schema.Fields {
			var flags []string
			if f.Visible {
				flags = append(flags, "visible")
			}
			if f.Filterable {
				flags = append(flags, "filterable")
			}
			if f.Sortable {
				flags = append(flags, "sortable")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Key, fieldLabel(f), f.Type, strings.Join(flags, ","))
		}
		return w.Flush()
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

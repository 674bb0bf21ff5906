// Values command: distinct values of one field.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bibliofile/bibliofile/pkg/query"
)

var valuesCmd = &cobra.Command{
	Use:   "values <field>",
	Short: "List the distinct values of a field, in first-seen order",
	Long: `Values prints each distinct value of a field once, in the order the
values first appear in the catalog. Array fields contribute each of
their elements. Items without a value are skipped.

Example:
  shelf values author
  shelf values genres --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, _, snap, err := openCatalog(cmd.Context())
		if err != nil {
			return err
		}
		defer l.Close()

		values := query.UniqueValues(snap.Items, args[0])
		if flagJSON {
			out := make([]string, len(values))
			for i, v := range values {
				out[i] = v.String()
			}
			return printJSON(out)
		}
		for _, v := range values {
			fmt.Println(v.String())
		}
		return nil
	},
}

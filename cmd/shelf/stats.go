// Stats command: catalog-wide aggregates.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bibliofile/bibliofile/pkg/query"
)

var (
	statsNumericField string
	statsRangeField   string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show count, sum, average, and range statistics for the catalog",
	Long: `Stats aggregates the whole catalog: item count, sum and average of a
numeric field, and the min/max range of another field. Items without a
usable numeric value count toward the total item count but not toward
the average.

Example:
  shelf stats --numeric-field rating --range-field year-published`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsNumericField, "numeric-field", "", "field to sum and average")
	statsCmd.Flags().StringVar(&statsRangeField, "range-field", "", "field for the min/max range")
}

func runStats(cmd *cobra.Command, args []string) error {
	l, _, snap, err := openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer l.Close()

	stats := query.CalculateStatusStats(snap.Items, statsNumericField, statsRangeField)
	if flagJSON {
		return printJSON(stats)
	}
	fmt.Printf("items:   %d\n", stats.Count)
	fmt.Printf("total:   %g\n", stats.Total)
	fmt.Printf("average: %.2f\n", stats.Average)
	if stats.Range.Min != nil && stats.Range.Max != nil {
		fmt.Printf("range:   [%g, %g]\n", *stats.Range.Min, *stats.Range.Max)
	} else {
		fmt.Println("range:   (no values)")
	}
	return nil
}

// List command: filtered, sorted, paginated catalog tables.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bibliofile/bibliofile/pkg/query"
)

var (
	listFilters    []string
	listSearch     []string
	listRangeField string
	listMin        string
	listMax        string
	listSortField  string
	listSortDesc   bool
	listPage       int
	listPageSize   int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items with optional filters, sorting, and paging",
	Long: `List shows the catalog as a table of visible schema fields.

Equality filters are key=value pairs and are ANDed together; a value on
an array field matches items whose array contains it. Text filters
(--search) match case-insensitive substrings. A numeric range filter
applies to --range-field.

Example:
  shelf list
  shelf list --filter catalog-status=published --sort year-published --desc
  shelf list --search title=house --range-field year-published --min 1800 --max 1900
  shelf list --page 2`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringArrayVar(&listFilters, "filter", nil, "equality filter key=value (repeatable)")
	listCmd.Flags().StringArrayVar(&listSearch, "search", nil, "substring filter key=text (repeatable)")
	listCmd.Flags().StringVar(&listRangeField, "range-field", "", "numeric field for --min/--max")
	listCmd.Flags().StringVar(&listMin, "min", "", "inclusive lower bound for --range-field")
	listCmd.Flags().StringVar(&listMax, "max", "", "inclusive upper bound for --range-field")
	listCmd.Flags().StringVar(&listSortField, "sort", "", "sort field (default: configured default sort column)")
	listCmd.Flags().BoolVar(&listSortDesc, "desc", false, "sort descending")
	listCmd.Flags().IntVar(&listPage, "page", 0, "zero-based page index")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "items per page (default: configured items_per_page)")
}

func runList(cmd *cobra.Command, args []string) error {
	l, schema, snap, err := openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer l.Close()

	items := snap.Items
	for _, arg := range listFilters {
		key, value, err := parseFilterArg(arg)
		if err != nil {
			return err
		}
		items = query.FilterByField(items, key, filterValue(schema, key, value))
	}
	for _, arg := range listSearch {
		key, text, err := parseFilterArg(arg)
		if err != nil {
			return err
		}
		items = query.FilterByText(items, key, text)
	}
	if listRangeField != "" {
		r, err := parseRange(listMin, listMax)
		if err != nil {
			return err
		}
		items = query.FilterByRange(items, listRangeField, r)
	}

	sortField := listSortField
	if sortField == "" {
		sortField = cfg.Prefs.DefaultSortColumn
	}
	desc := listSortDesc
	if listSortField == "" && cfg.Prefs.DefaultSortColumn != "" {
		desc = cfg.Prefs.DefaultSortDesc
	}
	if sortField != "" {
		items = query.SortByField(items, sortField, desc)
	}

	pageSize := listPageSize
	if pageSize == 0 {
		pageSize = cfg.Prefs.ItemsPerPage
	}
	total := len(items)
	items = query.Paginate(items, pageSize, listPage)

	if err := printItems(items, schema, cfg.Prefs.CompactMode); err != nil {
		return err
	}
	if !flagJSON {
		fmt.Printf("\npage %d of %d, %d items total (revision %d)\n",
			listPage+1, query.PageCount(total, pageSize), total, snap.Revision)
	}
	return nil
}

// parseRange builds a Range from optional bound strings.
func parseRange(minStr, maxStr string) (query.Range, error) {
	var r query.Range
	if minStr != "" {
		f, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return r, fmt.Errorf("invalid --min %q: %w", minStr, err)
		}
		r.Min = &f
	}
	if maxStr != "" {
		f, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return r, fmt.Errorf("invalid --max %q: %w", maxStr, err)
		}
		r.Max = &f
	}
	return r, nil
}

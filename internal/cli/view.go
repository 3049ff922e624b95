package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// viewParams holds the parameters for the view command.
type viewParams struct {
	search string
	sort   string
	page   int
	output string
	table  tableParams
}

// NewViewCmd creates the "view" command that renders one page of a dataset
// after applying search, sort and pagination flags.
func NewViewCmd() *cobra.Command {
	var params viewParams

	cmd := &cobra.Command{
		Use:   "view FILE [FILE...]",
		Short: "Render one page of a dataset",
		Long: `Load one or more dataset files (JSON, YAML or CSV), apply the search,
sort and pagination flags, and render the resulting page. Multiple files are
merged into a single view with their columns unioned.`,
		Example: `  # First page with defaults
  tabview view employees.json

  # Engineering rows, highest salary first
  tabview view employees.json --search engineering --sort salary:desc

  # Second page of five rows, as JSON
  tabview view employees.json --page 2 --page-size 5 --output json

  # Only two columns, salary rendered as currency
  tabview view employees.json --columns name,salary --currency salary`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeView(cmd, args, params)
		},
	}

	cmd.Flags().StringVar(&params.search, "search", "", "filter rows by case-insensitive substring match")
	cmd.Flags().StringVar(&params.sort, "sort", "", "sort by 'field' or 'field:order' (order: asc, desc)")
	cmd.Flags().IntVar(&params.page, "page", 1, "page number to render (1-based)")
	cmd.Flags().IntVar(&params.table.pageSize, "page-size", 0, "rows per page (default from config)")
	cmd.Flags().StringVar(&params.output, "output", "table", "output format (table, json, yaml)")
	cmd.Flags().StringSliceVar(&params.table.columns, "columns", nil, "restrict and order the visible columns")
	cmd.Flags().StringSliceVar(&params.table.currency, "currency", nil, "render the named columns as currency")

	return cmd
}

// executeView is the main execution pipeline for the view command.
func executeView(cmd *cobra.Command, names []string, params viewParams) error {
	// 1. Load and merge the dataset files
	ds, err := loadDataset(cmd, names)
	if err != nil {
		return err
	}

	// 2. Materialize the table
	tbl, err := buildTable(ds, params.table)
	if err != nil {
		return err
	}

	// 3. Apply search, sort and page selection
	if err := applyQueryFlags(tbl, params.search, params.sort, params.page); err != nil {
		return err
	}

	logger.Debug().
		Str("search", params.search).
		Str("sort", params.sort).
		Int("page", tbl.Page()).
		Int("total_rows", tbl.TotalRows()).
		Msg("view resolved")

	// 4. Render
	if err := renderViewOutput(cmd, params.output, tbl); err != nil {
		return fmt.Errorf("rendering view: %w", err)
	}

	return nil
}

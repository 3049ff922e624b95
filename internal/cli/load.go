package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/tabview/internal/dataset"
	"github.com/rshade/tabview/internal/dataview"
	"github.com/rshade/tabview/internal/numeric"
)

// tableParams holds the flags shared by commands that materialize a table
// from dataset files.
type tableParams struct {
	pageSize int
	columns  []string
	currency []string
}

// loadDataset reads and merges the named dataset files from the configured
// data directory.
func loadDataset(cmd *cobra.Command, names []string) (dataset.Dataset, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := dataset.NewStore(cfg.DataDir)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("opening data directory: %w", err)
	}

	ds, err := store.LoadAll(ctx, names)
	if err != nil {
		return dataset.Dataset{}, err
	}

	logger.Debug().
		Strs("files", names).
		Int("records", len(ds.Records)).
		Int("columns", len(ds.Columns)).
		Msg("dataset loaded")

	return ds, nil
}

// buildTable turns a dataset into a dataview.Table, applying column
// selection, currency formatting and the effective page size.
func buildTable(ds dataset.Dataset, params tableParams) (*dataview.Table, error) {
	columns := ds.Columns

	if len(params.columns) > 0 {
		selected, err := selectColumns(columns, params.columns)
		if err != nil {
			return nil, err
		}
		columns = selected
	}

	for _, key := range params.currency {
		if err := attachCurrencyFormatter(columns, key); err != nil {
			return nil, err
		}
	}

	pageSize := params.pageSize
	if pageSize <= 0 {
		pageSize = cfg.PageSize
	}

	return dataview.New(ds.Records, columns, dataview.WithPageSize(pageSize))
}

// applyQueryFlags runs the one-shot query pipeline on the table:
// search, then sort, then page selection.
func applyQueryFlags(tbl *dataview.Table, search, sortExpr string, page int) error {
	if search != "" {
		tbl.Search(search)
	}

	field, descending, err := ParseSort(sortExpr)
	if err != nil {
		return err
	}
	if field != "" {
		if err := tbl.Sort(field, !descending); err != nil {
			return err
		}
	}

	if page > 1 {
		if err := tbl.SetPage(page); err != nil {
			return err
		}
	}

	return nil
}

// selectColumns returns the subset of columns named by keys, in key order.
func selectColumns(columns []dataview.Column, keys []string) ([]dataview.Column, error) {
	selected := make([]dataview.Column, 0, len(keys))
	for _, key := range keys {
		idx := indexOfColumn(columns, key)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q (available: %s)",
				dataview.ErrInvalidColumn, key, strings.Join(columnKeys(columns), ", "))
		}
		selected = append(selected, columns[idx])
	}
	return selected, nil
}

// attachCurrencyFormatter wraps the named column with a currency formatter.
func attachCurrencyFormatter(columns []dataview.Column, key string) error {
	idx := indexOfColumn(columns, key)
	if idx < 0 {
		return fmt.Errorf("%w: %q (available: %s)",
			dataview.ErrInvalidColumn, key, strings.Join(columnKeys(columns), ", "))
	}
	columns[idx] = columns[idx].WithFormatter(currencyFormatter)
	return nil
}

func indexOfColumn(columns []dataview.Column, key string) int {
	for i, col := range columns {
		if col.Key == key {
			return i
		}
	}
	return -1
}

func columnKeys(columns []dataview.Column) []string {
	keys := make([]string, 0, len(columns))
	for _, col := range columns {
		keys = append(keys, col.Key)
	}
	return keys
}

// currencyFormatter renders numeric cells as dollar amounts. Absent cells
// render empty and non-numeric cells fall back to their plain representation.
func currencyFormatter(v any) string {
	if v == nil {
		return ""
	}
	f, ok := numeric.Coerce(v)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	return numeric.FormatCurrency(f)
}

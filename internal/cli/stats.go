package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/tabview/internal/dataview"
	"github.com/rshade/tabview/internal/numeric"
	"github.com/rshade/tabview/internal/textutil"
)

// statsParams holds the parameters for the stats command.
type statsParams struct {
	column   string
	output   string
	currency bool
}

// numericStats is the serializable summary of a numeric column.
type numericStats struct {
	Column  string          `json:"column" yaml:"column"`
	Summary numeric.Summary `json:"summary" yaml:"summary"`
}

// textStats is the serializable summary of a non-numeric column.
type textStats struct {
	Column       string `json:"column" yaml:"column"`
	Count        int    `json:"count" yaml:"count"`
	Distinct     int    `json:"distinct" yaml:"distinct"`
	MostFrequent string `json:"most_frequent" yaml:"most_frequent"`
}

// NewStatsCmd creates the "stats" command that summarizes a single column.
func NewStatsCmd() *cobra.Command {
	var params statsParams

	cmd := &cobra.Command{
		Use:   "stats FILE [FILE...]",
		Short: "Summarize a dataset column",
		Long: `Summarize one column across the given dataset files. Numeric columns get
count, sum, mean, min and max; other columns get count, distinct values and
the most frequent value.`,
		Example: `  # Salary statistics
  tabview stats employees.json --column salary

  # Salary statistics as currency
  tabview stats employees.json --column salary --currency

  # Department breakdown as JSON
  tabview stats employees.json --column department --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeStats(cmd, args, params)
		},
	}

	cmd.Flags().StringVar(&params.column, "column", "", "column key to summarize")
	cmd.Flags().StringVar(&params.output, "output", "table", "output format (table, json, yaml)")
	cmd.Flags().BoolVar(&params.currency, "currency", false, "render numeric values as currency")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

// executeStats is the main execution pipeline for the stats command.
func executeStats(cmd *cobra.Command, names []string, params statsParams) error {
	// 1. Load and merge the dataset files
	ds, err := loadDataset(cmd, names)
	if err != nil {
		return err
	}

	// 2. Validate the column key
	if indexOfColumn(ds.Columns, params.column) < 0 {
		return fmt.Errorf("%w: %q (available: %s)",
			dataview.ErrInvalidColumn, params.column, strings.Join(columnKeys(ds.Columns), ", "))
	}

	// 3. Collect the column values
	values, numbers := collectColumn(ds.Records, params.column)
	if len(values) == 0 {
		return fmt.Errorf("%w: column %q", numeric.ErrNoValues, params.column)
	}

	logger.Debug().
		Str("column", params.column).
		Int("values", len(values)).
		Int("numeric", len(numbers)).
		Msg("column collected")

	// 4. Numeric columns get a full summary, everything else text stats.
	if len(numbers) > 0 {
		summary, sumErr := numeric.Summarize(numbers)
		if sumErr != nil {
			return sumErr
		}
		return renderStatsOutput(cmd, params,
			numericStats{Column: params.column, Summary: summary}, nil)
	}

	mostFrequent, _, _ := textutil.MostFrequent(values)
	stats := textStats{
		Column:       params.column,
		Count:        len(values),
		Distinct:     len(textutil.Dedupe(values)),
		MostFrequent: mostFrequent,
	}
	return renderStatsOutput(cmd, params, numericStats{}, &stats)
}

// collectColumn gathers the display values and the numeric values of one
// column. Absent fields are skipped entirely.
func collectColumn(records []dataview.Record, key string) ([]string, []float64) {
	values := make([]string, 0, len(records))
	numbers := make([]float64, 0, len(records))

	for _, rec := range records {
		v, ok := rec.Field(key)
		if !ok || v == nil {
			continue
		}
		values = append(values, fmt.Sprintf("%v", v))
		if f, isNum := numeric.Coerce(v); isNum {
			numbers = append(numbers, f)
		}
	}
	return values, numbers
}

// renderStatsOutput dispatches to the correct renderer based on the output
// format. Exactly one of the numeric or text payloads is rendered.
func renderStatsOutput(cmd *cobra.Command, params statsParams, num numericStats, text *textStats) error {
	w := cmd.OutOrStdout()

	switch params.output {
	case outputFormatTable:
		if text != nil {
			renderTextStats(w, *text)
		} else {
			renderNumericStats(w, num, params.currency)
		}
		return nil
	case outputFormatJSON:
		if text != nil {
			return renderJSON(w, *text)
		}
		return renderJSON(w, num)
	case outputFormatYAML:
		if text != nil {
			return renderYAML(w, *text)
		}
		return renderYAML(w, num)
	default:
		return fmt.Errorf(
			"unsupported output format: %s (supported: table, json, yaml)",
			params.output,
		)
	}
}

func renderNumericStats(w io.Writer, stats numericStats, currency bool) {
	format := func(f float64) string {
		if currency {
			return numeric.FormatCurrency(f)
		}
		return numeric.FormatFloat(f, 2)
	}

	fmt.Fprintf(w, "Column: %s\n", stats.Column)
	fmt.Fprintf(w, "Count:  %s\n", numeric.FormatNumber(int64(stats.Summary.Count)))
	fmt.Fprintf(w, "Sum:    %s\n", format(stats.Summary.Sum))
	fmt.Fprintf(w, "Mean:   %s\n", format(stats.Summary.Mean))
	fmt.Fprintf(w, "Min:    %s\n", format(stats.Summary.Min))
	fmt.Fprintf(w, "Max:    %s\n", format(stats.Summary.Max))
}

func renderTextStats(w io.Writer, stats textStats) {
	fmt.Fprintf(w, "Column:        %s\n", stats.Column)
	fmt.Fprintf(w, "Count:         %s\n", numeric.FormatNumber(int64(stats.Count)))
	fmt.Fprintf(w, "Distinct:      %s\n", numeric.FormatNumber(int64(stats.Distinct)))
	fmt.Fprintf(w, "Most frequent: %s\n", stats.MostFrequent)
}

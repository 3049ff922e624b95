package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/tabview/internal/dataview"
)

// Output formats supported by --output.
const (
	outputFormatTable = "table"
	outputFormatJSON  = "json"
	outputFormatYAML  = "yaml"
)

// pageDocument is the serializable projection of a table's current page.
// Rows are projected through the visible columns so formatter-free raw
// values land in the output.
type pageDocument struct {
	Rows     []map[string]any  `json:"rows"      yaml:"rows"`
	PageInfo dataview.PageInfo `json:"page_info" yaml:"page_info"`
}

func newPageDocument(tbl *dataview.Table) pageDocument {
	return pageDocument{
		Rows:     projectRecords(tbl.CurrentPage(), tbl.Columns()),
		PageInfo: tbl.PageInfo(),
	}
}

// projectRecords converts records to plain maps keyed by column key.
// Absent fields are omitted rather than emitted as null.
func projectRecords(records []dataview.Record, columns []dataview.Column) []map[string]any {
	rows := make([]map[string]any, len(records))
	for i, rec := range records {
		row := make(map[string]any, len(columns))
		for _, col := range columns {
			if v, ok := rec.Field(col.Key); ok {
				row[col.Key] = v
			}
		}
		rows[i] = row
	}
	return rows
}

// renderViewOutput dispatches to the correct renderer based on the output format.
func renderViewOutput(cmd *cobra.Command, format string, tbl *dataview.Table) error {
	switch format {
	case outputFormatTable:
		renderTable(cmd.OutOrStdout(), tbl)
		return nil
	case outputFormatJSON:
		return renderJSON(cmd.OutOrStdout(), newPageDocument(tbl))
	case outputFormatYAML:
		return renderYAML(cmd.OutOrStdout(), newPageDocument(tbl))
	default:
		return fmt.Errorf(
			"unsupported output format: %s (supported: table, json, yaml)",
			format,
		)
	}
}

// renderTable writes the current page as a bordered text table followed by
// a pagination footer.
func renderTable(w io.Writer, tbl *dataview.Table) {
	info := tbl.PageInfo()

	if tbl.IsEmpty() {
		fmt.Fprintln(w, "No rows to display.")
		fmt.Fprintf(w, "Page %d/%d | Rows %d of %d\n",
			info.CurrentPage, info.TotalPages, 0, info.TotalRows)
		return
	}

	columns := tbl.Columns()
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Label
	}

	t := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)

	for _, rec := range tbl.CurrentPage() {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = tbl.FormatCell(rec, col)
		}
		t.Row(cells...)
	}

	fmt.Fprintln(w, t)
	fmt.Fprintf(w, "Page %d/%d | Rows %d-%d of %d\n",
		info.CurrentPage, info.TotalPages, info.StartRow, info.EndRow, info.TotalRows)
}

func renderJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}

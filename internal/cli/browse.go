package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/tabview/internal/tui"
)

// ErrNotATerminal is returned when browse runs without an interactive terminal.
var ErrNotATerminal = errors.New(
	"browse requires an interactive terminal (use 'tabview view' for non-interactive output)")

// browseParams holds the parameters for the browse command.
type browseParams struct {
	table tableParams
}

// NewBrowseCmd creates the "browse" command that opens a dataset in the
// interactive terminal browser.
func NewBrowseCmd() *cobra.Command {
	var params browseParams

	cmd := &cobra.Command{
		Use:   "browse FILE [FILE...]",
		Short: "Browse a dataset interactively",
		Long: `Open one or more dataset files in an interactive browser with incremental
search, column sorting and page navigation. Requires a terminal; pipelines
should use 'tabview view' instead.`,
		Example: `  # Browse a dataset
  tabview browse employees.json

  # Browse a merged view with larger pages
  tabview browse eng.json sales.json --page-size 25`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeBrowse(cmd, args, params)
		},
	}

	cmd.Flags().IntVar(&params.table.pageSize, "page-size", 0, "rows per page (default from config)")
	cmd.Flags().StringSliceVar(&params.table.columns, "columns", nil, "restrict and order the visible columns")
	cmd.Flags().StringSliceVar(&params.table.currency, "currency", nil, "render the named columns as currency")

	return cmd
}

// executeBrowse loads the dataset and hands it to the Bubble Tea program.
func executeBrowse(cmd *cobra.Command, names []string, params browseParams) error {
	if !isTerminal(os.Stdout) {
		return ErrNotATerminal
	}

	ds, err := loadDataset(cmd, names)
	if err != nil {
		return err
	}

	tbl, err := buildTable(ds, params.table)
	if err != nil {
		return err
	}

	logger.Info().
		Strs("files", names).
		Int("records", tbl.TotalRows()).
		Msg("starting interactive browser")

	model := tui.NewBrowseModel(tbl, strings.Join(names, ", "))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}

	return nil
}

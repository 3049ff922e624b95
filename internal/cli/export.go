package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/tabview/internal/dataset"
	"github.com/rshade/tabview/internal/textutil"
)

// exportParams holds the parameters for the export command.
type exportParams struct {
	dir      string
	pageSize int
}

// NewExportCmd creates the "export" command that splits a dataset into one
// JSON file per page.
func NewExportCmd() *cobra.Command {
	var params exportParams

	cmd := &cobra.Command{
		Use:   "export FILE [FILE...]",
		Short: "Export a dataset as one JSON file per page",
		Long: `Load one or more dataset files, split the merged rows into pages, and
write each page as a standalone JSON file named after the first input file.`,
		Example: `  # Default page size into ./export
  tabview export employees.json

  # 25 rows per file into a custom directory
  tabview export employees.json --dir pages --page-size 25`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeExport(cmd, args, params)
		},
	}

	cmd.Flags().StringVar(&params.dir, "dir", "export", "directory to write page files into")
	cmd.Flags().IntVar(&params.pageSize, "page-size", 0, "rows per page file (default from config)")

	return cmd
}

// executeExport is the main execution pipeline for the export command.
func executeExport(cmd *cobra.Command, names []string, params exportParams) error {
	// 1. Load and merge the dataset files
	ds, err := loadDataset(cmd, names)
	if err != nil {
		return err
	}

	// 2. Split the projected rows into pages
	pageSize := params.pageSize
	if pageSize <= 0 {
		pageSize = cfg.PageSize
	}

	rows := projectRecords(ds.Records, ds.Columns)
	pages, err := textutil.Chunk(rows, pageSize)
	if err != nil {
		return err
	}

	// 3. Write one file per page
	outStore, err := dataset.NewStore(params.dir)
	if err != nil {
		return fmt.Errorf("opening export directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(names[0]), filepath.Ext(names[0]))
	for i, page := range pages {
		name := fmt.Sprintf("%s-page-%03d.json", base, i+1)
		if err := outStore.WriteJSON(name, page); err != nil {
			return fmt.Errorf("writing page %d: %w", i+1, err)
		}
	}

	logger.Info().
		Int("pages", len(pages)).
		Int("page_size", pageSize).
		Str("dir", params.dir).
		Msg("dataset exported")
	cmd.Printf("Exported %d pages to %s\n", len(pages), params.dir)

	return nil
}

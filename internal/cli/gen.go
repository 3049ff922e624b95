package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/tabview/internal/dataset"
)

// genParams holds the parameters for the gen command.
type genParams struct {
	count int
	out   string
	force bool
}

// NewGenCmd creates the "gen" command that writes a sample dataset.
func NewGenCmd() *cobra.Command {
	var params genParams

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a sample employee dataset",
		Long: `Write a sample employee dataset into the configured data directory,
ready for the view, browse, stats and export commands.`,
		Example: `  # Ten sample employees
  tabview gen

  # Fifty rows into a custom file
  tabview gen -n 50 -o demo.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeGen(cmd, params)
		},
	}

	cmd.Flags().IntVarP(&params.count, "count", "n", 10, "number of rows to generate")
	cmd.Flags().StringVarP(&params.out, "out", "o", "employees.json",
		"output file name (relative to the data directory)")
	cmd.Flags().BoolVar(&params.force, "force", false, "overwrite an existing dataset file")

	return cmd
}

// executeGen generates the sample rows and writes them as one JSON dataset.
func executeGen(cmd *cobra.Command, params genParams) error {
	if params.count < 1 {
		return fmt.Errorf("count must be >= 1, got %d", params.count)
	}

	store, err := dataset.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening data directory: %w", err)
	}

	if !params.force {
		if _, sizeErr := store.Size(params.out); sizeErr == nil {
			if !isTerminal(os.Stdin) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", params.out)
			}
			if !promptOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), params.out) {
				return fmt.Errorf("aborted, %s left untouched", params.out)
			}
		}
	}

	records := dataset.GenerateEmployees(params.count)
	if err := store.WriteJSON(params.out, records); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}

	logger.Info().
		Int("records", len(records)).
		Str("file", params.out).
		Msg("dataset generated")
	cmd.Printf("Wrote %d records to %s\n", len(records), params.out)

	return nil
}

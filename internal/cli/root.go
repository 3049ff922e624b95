package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/tabview/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// cfg is the configuration resolved in PersistentPreRunE and shared by all
// subcommands.
var cfg config.Config //nolint:gochecknoglobals // Populated once per command execution

// NewRootCmd creates the root Cobra command for the tabview CLI.
// It wires up configuration, logging and the subcommands
// (view, browse, stats, gen, export, config).
func NewRootCmd(ver string) *cobra.Command {
	var logClose io.Closer

	cmd := &cobra.Command{
		Use:     "tabview",
		Short:   "Search, sort and page through tabular data",
		Long:    "Tabview: browse tabular datasets from the terminal with search, sorting and pagination",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := loaded.CheckRequires(ver); err != nil {
				return err
			}
			cfg = loaded

			closer, err := setupLogging(cmd, cfg)
			if err != nil {
				return err
			}
			logClose = closer
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logClose != nil {
				return logClose.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().
		String("config", "", "path to config file (default: .tabview.yaml in CWD or home)")
	cmd.AddCommand(
		NewViewCmd(), NewBrowseCmd(), NewStatsCmd(),
		NewGenCmd(), NewExportCmd(), newConfigCmd(),
	)

	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}

const rootCmdExample = `  # View a dataset one page at a time
  tabview view employees.json

  # Search, sort and jump to a page
  tabview view employees.json --search engineering --sort salary:desc --page 2

  # Merge several files into one view
  tabview view eng.json sales.csv --columns name,salary

  # Browse a dataset interactively
  tabview browse employees.json

  # Summarize a column
  tabview stats employees.json --column salary

  # Generate a sample dataset
  tabview gen -n 50 -o employees.json

  # Export a dataset as one JSON file per page
  tabview export employees.json --dir pages --page-size 25

  # Write a starter configuration file
  tabview config init`

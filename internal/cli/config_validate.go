package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewConfigValidateCmd creates the "config validate" command.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the resolved configuration",
		Long: `Validate the configuration the other commands would run with: built-in
defaults overlaid with the config file and TABVIEW_* environment
variables. File parse errors and invalid values are reported with the
offending source.`,
		Example: `  # Validate the current configuration
  tabview config validate

  # Validate and show the resolved values
  tabview config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the resolved configuration values")

	return cmd
}

// executeConfigValidate re-checks the configuration resolved by the root
// command and optionally prints it. Unparseable files never reach this
// point; they fail during root command setup.
func executeConfigValidate(cmd *cobra.Command, verbose bool) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printConfigDetails(cmd)
	}

	return nil
}

// printConfigDetails prints the resolved configuration values.
func printConfigDetails(cmd *cobra.Command) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Page size:      %d\n", cfg.PageSize)
	cmd.Printf("  Data directory: %s\n", cfg.DataDir)
	cmd.Printf("  Logging level:  %s\n", cfg.Logging.Level)
	cmd.Printf("  Logging format: %s\n", cfg.Logging.Format)

	if cfg.Logging.File != "" {
		cmd.Printf("  Log file:       %s\n", cfg.Logging.File)
	}
	if cfg.Requires != "" {
		cmd.Printf("  Requires:       %s\n", cfg.Requires)
	}
}

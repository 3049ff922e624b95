package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/tabview/internal/config"
)

// NewConfigInitCmd creates the "config init" command. By default it writes
// a project-local .tabview.yaml into the working directory; --global
// targets the home directory instead.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Long: `Write a starter configuration file with the built-in defaults.

Without --global the file is created as .tabview.yaml in the working
directory, which takes precedence over the global file in the home
directory.`,
		Example: `  # Project-local configuration
  tabview config init

  # Global configuration
  tabview config init --global

  # Overwrite an existing file
  tabview config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeConfigInit(cmd, force, global)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the global configuration in the home directory")

	return cmd
}

// executeConfigInit writes the default configuration to the resolved path.
func executeConfigInit(cmd *cobra.Command, force, global bool) error {
	path := config.FileName
	if global {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration file already exists at %s, use --force to overwrite", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}

	logger.Info().Str("path", path).Bool("global", global).Msg("config initialized")
	cmd.Printf("Configuration initialized at %s\n", path)

	return nil
}

package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/tabview/internal/config"
	"github.com/rshade/tabview/internal/logging"
)

// setupLogging configures the package logger from the resolved config and the
// --debug flag, stores it on the command context, and returns the closer for
// any log file sink. Environment overrides were already applied by config.Load,
// so precedence is flag over env over file over defaults.
func setupLogging(cmd *cobra.Command, cfg config.Config) (io.Closer, error) {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	log, closer, err := logging.New(loggingCfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	logger = logging.ComponentLogger(log, "cli")

	ctx := logging.WithContext(cmd.Context(), logger)
	cmd.SetContext(ctx)

	logger.Info().Str("command", cmd.Name()).Msg("command started")

	return closer, nil
}

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/arcanaland/concentration/internal/config"
	"github.com/arcanaland/concentration/internal/logger"
)

var (
	logLevel string

	appConfig *config.Config
	appLogger *slog.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "concentration",
	Short: "Memory-matching card game for the terminal",
	Long: `Concentration deals a 52-card deck face-down onto a 4x13 board.
Turn over two tiles at a time; matching ranks stay up and score 10 points.
The game ends when all 26 pairs are found.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, loadErr := config.LoadConfig()
		if loadErr != nil {
			// keep going with defaults so "config set" can repair a bad file
			cfg = config.Default()
		}
		appConfig = cfg

		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		appLogger = logger.Setup(level, cmd.ErrOrStderr())

		if loadErr != nil {
			appLogger.Warn("using default config", "error", loadErr)
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	RootCmd.AddCommand(replayCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func stdoutColor(cmd *cobra.Command) string {
	if flag, _ := cmd.Flags().GetString("color"); flag != "" {
		return flag
	}
	if appConfig != nil {
		return appConfig.Color
	}
	return "auto"
}


package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/concentration/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage concentration settings",
	Long:  `Commands for creating, inspecting and changing the config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and records directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())

		if err := os.MkdirAll(config.GetRecordsDir(), 0755); err != nil {
			return fmt.Errorf("error creating records directory: %w", err)
		}
		fmt.Fprintln(out, "Records directory initialized at:", config.GetRecordsDir())
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and records paths",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "config: ", config.GetConfigFilePath())
		fmt.Fprintln(cmd.OutOrStdout(), "records:", config.GetRecordsDir())
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(appConfig)
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: fmt.Sprintf(`Set changes one key in the config file and validates the result.

Keys: %s

Examples:
  concentration config set mismatch_delay_ms 1500
  concentration config set color never`, strings.Join(config.Keys(), ", ")),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.SetValue(key, value); err != nil {
			return fmt.Errorf("error setting %s: %w", key, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", key, value)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

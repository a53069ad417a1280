package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/concentration/internal/validator"
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay [record]",
	Short: "Replay a saved game and check its result",
	Long: `Replay rebuilds the board of a saved game from its seed, plays every recorded
pick again and checks that the recorded score and tries match.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recordPath := args[0]
		out := cmd.OutOrStdout()

		// Create validator and run the replay
		v := validator.NewValidator(recordPath, appLogger)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("replay error: %w", err)
		}

		fmt.Fprintln(out, "Replay Results:")
		fmt.Fprintln(out, "---------------")
		fmt.Fprintf(out, "Score: %d, tried %d times, finished: %t\n", results.Score, results.Tries, results.Finished)

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Record '%s' replays cleanly.\n", recordPath)
		} else {
			fmt.Fprintf(out, "❌ Record '%s' has %d replay errors:\n", recordPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("replay failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

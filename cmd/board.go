package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/concentration/internal/display"
	"github.com/arcanaland/concentration/internal/game"
)

// boardCmd prints a dealt board face-up
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the layout a seed deals, face-up",
	Long: `Board deals the board for a seed and prints every tile face-up.
Use it to check a record or to settle an argument about a game.

Examples:
  concentration board --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetInt64("seed")

		term := display.NewTerminal(cmd.OutOrStdout(), display.Options{
			Color:           stdoutColor(cmd),
			ShowCoordinates: true,
		})

		c := game.NewController(term, game.WithShuffler(seededShuffler(seed)), game.WithLogger(appLogger))
		c.Start()
		for pos, id := range c.Board() {
			term.Reveal(pos, id)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Seed %d\n\n", seed)
		return term.Flush()
	},
}

func init() {
	RootCmd.AddCommand(boardCmd)

	boardCmd.Flags().Int64P("seed", "s", 0, "Seed to deal from")
	boardCmd.Flags().String("color", "", "Colour output: auto, always or never (default from config)")
	_ = boardCmd.MarkFlagRequired("seed")
}

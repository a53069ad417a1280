package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/concentration/internal/config"
	"github.com/arcanaland/concentration/internal/display"
	"github.com/arcanaland/concentration/internal/game"
	"github.com/arcanaland/concentration/internal/input"
	"github.com/arcanaland/concentration/internal/record"
	"github.com/arcanaland/concentration/internal/shuffle"
)

const prompt = "Pick a tile (e.g. B7, q to quit): "

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	Long: `Play deals a fresh board and reads tile picks from standard input, one per line.
Tiles are named by row letter and column number (A1 to D13); a raw position
0-51 also works. Type q to give up.

Examples:
  concentration play
  concentration play --seed 42 --record
  concentration play --color never < moves.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetInt64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = rand.Int64()
		}
		save, _ := cmd.Flags().GetBool("record")
		delay := appConfig.MismatchDelay()

		term := display.NewTerminal(cmd.OutOrStdout(), display.Options{
			Color:           stdoutColor(cmd),
			ShowCoordinates: appConfig.ShowCoordinates,
			Clear:           true,
			Prompt:          prompt,
		})

		s := game.NewSession(term, appLogger,
			game.WithShuffler(seededShuffler(seed)),
			game.WithMismatchDelay(delay))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		selections := make(chan int)
		go readSelections(ctx, cmd.InOrStdin(), cmd.ErrOrStderr(), selections)

		started := time.Now()
		res, err := s.Run(ctx, selections)
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("game error: %w", err)
		}

		if !res.Finished {
			fmt.Fprintf(cmd.OutOrStdout(), "\nGame over: %d of %d pairs, tried %d times (seed %d)\n",
				res.Score/game.ScoreIncrement, game.TerminalScore/game.ScoreIncrement, res.Attempts, seed)
		}

		if save {
			path, err := record.Save(record.FromResult(res, seed, started, delay), config.GetRecordsDir())
			if err != nil {
				return fmt.Errorf("error saving record: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Record saved to:", path)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64P("seed", "s", 0, "Deal a reproducible board from this seed")
	playCmd.Flags().BoolP("record", "r", false, "Save the game to the records directory")
	playCmd.Flags().String("color", "", "Colour output: auto, always or never (default from config)")
}

func seededShuffler(seed int64) game.Shuffler {
	return func(n int) []int {
		return shuffle.Permutation(n, shuffle.Seeded(uint64(seed)))
	}
}

// readSelections parses lines from r and sends positions until EOF, quit,
// or ctx is done. The channel is closed when it returns.
func readSelections(ctx context.Context, r io.Reader, errOut io.Writer, out chan<- int) {
	defer close(out)
	warn := colorize.New(colorize.FgYellow)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		parsed, err := input.Parse(scanner.Text())
		switch {
		case errors.Is(err, input.ErrEmpty):
			continue
		case err != nil:
			fmt.Fprintln(errOut, warn.Sprint(err))
			continue
		case parsed.Kind == input.Quit:
			return
		}

		select {
		case out <- parsed.Position:
		case <-ctx.Done():
			return
		}
	}
}

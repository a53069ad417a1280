package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/concentration/internal/card"
)

// cardCmd represents the card command group
var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Look up cards of the deck",
}

var cardShowCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display information about a card",
	Long: `Show prints a card's id, suit and rank, and the cards it pairs with.
Cards can be given by id (0-51) or by label such as AS, 10H or qc.

Examples:
  concentration card show 18
  concentration card show 6H`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		useColor := stdoutColor(cmd)
		label := colorize.New(colorize.FgCyan)
		value := colorize.New(colorize.FgHiWhite)
		for _, c := range []*colorize.Color{label, value} {
			switch useColor {
			case "always":
				c.EnableColor()
			case "never":
				c.DisableColor()
			}
		}

		displayCard(cmd, card.Info(id), label, value)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)
	cardCmd.AddCommand(cardShowCmd)

	cardShowCmd.Flags().String("color", "", "Colour output: auto, always or never (default from config)")
}

// displayCard prints the card's details, one labelled line each
func displayCard(cmd *cobra.Command, c card.Card, label, value *colorize.Color) {
	var partners []string
	for other := card.ID(0); other < card.DeckSize; other++ {
		if other != c.ID && card.Match(c.ID, other) {
			partners = append(partners, fmt.Sprintf("%d (%s)", other, other))
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  "+label.Sprint("Card:    ")+value.Sprint(c.Name))
	fmt.Fprintln(out, "  "+label.Sprint("ID:      ")+value.Sprint(int(c.ID)))
	fmt.Fprintln(out, "  "+label.Sprint("Label:   ")+value.Sprint(c.ID.String()))
	fmt.Fprintln(out, "  "+label.Sprint("Suit:    ")+value.Sprintf("%s · %s", c.Suit, c.Suit.Symbol()))
	fmt.Fprintln(out, "  "+label.Sprint("Rank:    ")+value.Sprintf("%d (%s)", c.Rank, c.Label))
	fmt.Fprintln(out, "  "+label.Sprint("Matches: ")+value.Sprint(strings.Join(partners, ", ")))
	fmt.Fprintln(out)
}

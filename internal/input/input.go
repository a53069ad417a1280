// Package input turns typed tile references into board positions.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/concentration/internal/card"
)

const (
	columns = card.RanksPerSuit
	rows    = card.DeckSize / columns
)

var (
	ErrEmpty      = errors.New("empty input")
	ErrSyntax     = errors.New("unrecognised tile")
	ErrOutOfRange = errors.New("tile out of range")
)

// Kind tells what the player asked for
type Kind int

const (
	Select Kind = iota
	Quit
)

// Command is one parsed line of input
type Command struct {
	Kind     Kind
	Position int
}

// Parse accepts "A7", "7a", a raw 0-based position "27", or q/quit/exit
func Parse(line string) (Command, error) {
	s := strings.ToUpper(strings.TrimSpace(line))
	if s == "" {
		return Command{}, ErrEmpty
	}

	switch s {
	case "Q", "QUIT", "EXIT":
		return Command{Kind: Quit}, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= card.DeckSize {
			return Command{}, fmt.Errorf("%w: %d", ErrOutOfRange, n)
		}
		return Command{Kind: Select, Position: n}, nil
	}

	var rowPart, colPart string
	switch {
	case isRowLetter(s[0]):
		rowPart, colPart = s[:1], s[1:]
	case isRowLetter(s[len(s)-1]):
		rowPart, colPart = s[len(s)-1:], s[:len(s)-1]
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}

	col, err := strconv.Atoi(colPart)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}
	row := int(rowPart[0] - 'A')
	if row >= rows || col < 1 || col > columns {
		return Command{}, fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}

	return Command{Kind: Select, Position: row*columns + col - 1}, nil
}

// Format returns the row-letter form of a position, e.g. 27 -> "C2"
func Format(position int) string {
	if position < 0 || position >= card.DeckSize {
		return strconv.Itoa(position)
	}
	return fmt.Sprintf("%c%d", 'A'+position/columns, position%columns+1)
}

func isRowLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

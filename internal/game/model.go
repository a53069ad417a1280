package game

import (
	"fmt"

	"github.com/arcanaland/concentration/internal/card"
)

const (
	// ScoreIncrement is awarded for every matched pair
	ScoreIncrement = 10
	// TerminalScore is reached once all 26 pairs are matched
	TerminalScore = card.DeckSize / 2 * ScoreIncrement
)

// Model holds the mutable bookkeeping of a session. Only the controller in
// this package mutates it; everyone else gets the read accessors.
type Model struct {
	revealed []card.ID
	score    int
	attempts int
}

func newModel() *Model {
	return &Model{revealed: make([]card.ID, 0, 2)}
}

// Revealed returns a copy of the cards awaiting judgment
func (m *Model) Revealed() []card.ID {
	out := make([]card.ID, len(m.revealed))
	copy(out, m.revealed)
	return out
}

func (m *Model) Score() int {
	return m.score
}

func (m *Model) Attempts() int {
	return m.attempts
}

func (m *Model) recordReveal(id card.ID) {
	m.revealed = append(m.revealed, id)
}

// isMatch must only be called with exactly two revealed cards
func (m *Model) isMatch() bool {
	if len(m.revealed) != 2 {
		panic(fmt.Sprintf("game: match check with %d revealed cards", len(m.revealed)))
	}
	return card.Match(m.revealed[0], m.revealed[1])
}

func (m *Model) clearRevealed() {
	m.revealed = m.revealed[:0]
}

func (m *Model) addScore(n int) {
	m.score += n
}

func (m *Model) incrementAttempts() {
	m.attempts++
}

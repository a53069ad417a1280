package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/concentration/internal/card"
	"github.com/arcanaland/concentration/internal/game"
)

var _ game.Display = (*Terminal)(nil)
var _ game.Flusher = (*Terminal)(nil)

func identityBoard() []card.ID {
	board := make([]card.ID, card.DeckSize)
	for i := range board {
		board[i] = card.ID(i)
	}
	return board
}

func plain(opts Options) (*Terminal, *bytes.Buffer) {
	var buf bytes.Buffer
	opts.Color = "never"
	return NewTerminal(&buf, opts), &buf
}

func TestFlushOnlyWhenDirty(t *testing.T) {
	term, buf := plain(Options{Width: 120})

	require.NoError(t, term.Flush())
	assert.Zero(t, buf.Len())

	term.RenderBoard(identityBoard())
	require.NoError(t, term.Flush())
	first := buf.Len()
	assert.NotZero(t, first)

	require.NoError(t, term.Flush())
	assert.Equal(t, first, buf.Len())
	assert.False(t, term.Interactive())
}

func TestFaceDownBoard(t *testing.T) {
	term, _ := plain(Options{Width: 120, ShowCoordinates: true})
	term.RenderBoard(identityBoard())

	lines := strings.Split(term.Frame(), "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Equal(t, "     1   2   3   4   5   6   7   8   9  10  11  12  13", lines[0])
	assert.Equal(t, "A "+strings.Repeat(" ░░░", Columns), lines[1])
	assert.True(t, strings.HasPrefix(lines[4], "D "))
	assert.Contains(t, term.Frame(), "Score: 0   You've tried 0 times")
}

func TestRevealPairAndMismatch(t *testing.T) {
	term, _ := plain(Options{Width: 120})
	term.RenderBoard(identityBoard())

	term.Reveal(0, 0)
	term.Reveal(22, 22)
	term.PlayMismatchCue(0, 22)
	frame := term.Frame()
	assert.Contains(t, frame, "!A♠")
	assert.Contains(t, frame, "10♥")
	assert.Contains(t, frame, "No match")

	term.Cover(0, 0)
	term.Cover(22, 22)
	frame = term.Frame()
	assert.NotContains(t, frame, "A♠")
	assert.NotContains(t, frame, "No match")

	term.Reveal(5, 5)
	term.Reveal(18, 18)
	term.UpdateAttempts(2)
	term.UpdateScore(10)
	term.MarkPaired(5, 18)
	frame = term.Frame()
	assert.Contains(t, frame, " 6♠")
	assert.Contains(t, frame, " 6♥")
	assert.Contains(t, frame, "Score: 10   You've tried 2 times")
}

func TestCompletionPanel(t *testing.T) {
	term, buf := plain(Options{Width: 120})
	term.RenderBoard(identityBoard())
	term.ShowCompletion(260, 31)
	require.NoError(t, term.Flush())

	out := buf.String()
	assert.Contains(t, out, "Complete!")
	assert.Contains(t, out, "Score: 260")
	assert.Contains(t, out, "You've tried: 31 times")
}

func TestCompactLayout(t *testing.T) {
	term, _ := plain(Options{Width: 40})
	term.RenderBoard(identityBoard())
	term.Reveal(9, 9)

	lines := strings.Split(term.Frame(), "\n")
	assert.Equal(t, " ░░ ░░ ░░ ░░ ░░ ░░ ░░ ░░ ░░ T♠ ░░ ░░ ░░", lines[0])
}

func TestColorOutput(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, Options{Color: "always", Width: 120})
	term.RenderBoard(identityBoard())
	term.Reveal(13, 13)

	frame := term.Frame()
	assert.Contains(t, frame, "\x1b[38;2;")
	assert.Contains(t, stripAnsi(frame), " A♥")
}

func TestPad(t *testing.T) {
	assert.Equal(t, " A♠", pad("A♠", 3))
	assert.Equal(t, "10♥", pad("10♥", 3))
	assert.Equal(t, "  7", stripAnsi(pad("\x1b[36m7\x1b[0m", 3)))
}

func TestPromptHiddenAfterCompletion(t *testing.T) {
	term, _ := plain(Options{Width: 120, Prompt: "tile> "})
	term.RenderBoard(identityBoard())
	assert.True(t, strings.HasSuffix(term.Frame(), "\ntile> "))

	term.ShowCompletion(260, 26)
	assert.NotContains(t, term.Frame(), "tile> ")
}

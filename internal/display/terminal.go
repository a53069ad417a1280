// Package display draws the game board in a terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/concentration/internal/card"
)

const (
	// Columns is the number of tiles per row; one suit's worth
	Columns = card.RanksPerSuit
	// Rows is the number of board rows
	Rows = card.DeckSize / Columns

	cellWidth    = 3
	compactWidth = 2
)

// Options controls how the terminal renderer behaves
type Options struct {
	// Color is "auto", "always" or "never"
	Color string
	// ShowCoordinates draws row letters and column numbers
	ShowCoordinates bool
	// Width overrides the detected terminal width when > 0
	Width int
	// Clear redraws from the top of the screen on an interactive terminal
	Clear bool
	// Prompt is printed under the board until the game completes
	Prompt string
}

type tileView struct {
	id     card.ID
	faceUp bool
	paired bool
	wrong  bool
}

// Terminal implements game.Display on an io.Writer. Calls only update its
// view; nothing is written until Flush.
type Terminal struct {
	out     io.Writer
	opts    Options
	palette Palette

	color       bool
	interactive bool
	width       int

	tiles    []tileView
	score    int
	attempts int
	complete bool
	dirty    bool

	label  *colorize.Color
	accent *colorize.Color
	bold   *colorize.Color
}

// NewTerminal creates a renderer writing to out
func NewTerminal(out io.Writer, opts Options) *Terminal {
	t := &Terminal{
		out:     out,
		opts:    opts,
		palette: DefaultPalette(),
		label:   colorize.New(colorize.FgCyan),
		accent:  colorize.New(colorize.FgHiWhite),
		bold:    colorize.New(colorize.FgHiGreen, colorize.Bold),
	}

	fd, isFile := fileDescriptor(out)
	t.interactive = isFile && term.IsTerminal(fd)

	switch strings.ToLower(opts.Color) {
	case "always":
		t.color = true
	case "never":
		t.color = false
	default:
		t.color = t.interactive && os.Getenv("NO_COLOR") == ""
	}

	t.width = opts.Width
	if t.width <= 0 && t.interactive {
		if w, _, err := term.GetSize(fd); err == nil {
			t.width = w
		}
	}
	if t.width <= 0 {
		t.width = 80 // Default if we can't get terminal width
	}

	for _, c := range []*colorize.Color{t.label, t.accent, t.bold} {
		if t.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return t
}

func fileDescriptor(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

// Interactive reports whether output goes to a terminal
func (t *Terminal) Interactive() bool {
	return t.interactive
}

func (t *Terminal) RenderBoard(board []card.ID) {
	t.tiles = make([]tileView, len(board))
	for i, id := range board {
		t.tiles[i] = tileView{id: id}
	}
	t.score, t.attempts, t.complete = 0, 0, false
	t.dirty = true
}

func (t *Terminal) Reveal(position int, id card.ID) {
	if tile := t.tile(position); tile != nil {
		tile.id = id
		tile.faceUp = true
		t.dirty = true
	}
}

func (t *Terminal) Cover(position int, id card.ID) {
	if tile := t.tile(position); tile != nil {
		tile.faceUp = false
		tile.wrong = false
		t.dirty = true
	}
}

func (t *Terminal) MarkPaired(positions ...int) {
	for _, p := range positions {
		if tile := t.tile(p); tile != nil {
			tile.paired = true
			tile.wrong = false
		}
	}
	t.dirty = true
}

// PlayMismatchCue tints the tiles until they are covered again
func (t *Terminal) PlayMismatchCue(positions ...int) {
	for _, p := range positions {
		if tile := t.tile(p); tile != nil {
			tile.wrong = true
		}
	}
	t.dirty = true
}

func (t *Terminal) UpdateScore(score int) {
	t.score = score
	t.dirty = true
}

func (t *Terminal) UpdateAttempts(attempts int) {
	t.attempts = attempts
	t.dirty = true
}

func (t *Terminal) ShowCompletion(score, attempts int) {
	t.score, t.attempts = score, attempts
	t.complete = true
	t.dirty = true
}

func (t *Terminal) tile(position int) *tileView {
	if position < 0 || position >= len(t.tiles) {
		return nil
	}
	return &t.tiles[position]
}

// Flush writes the current frame if anything changed since the last one
func (t *Terminal) Flush() error {
	if !t.dirty {
		return nil
	}
	t.dirty = false

	var b strings.Builder
	if t.opts.Clear && t.interactive {
		// home + clear screen
		b.WriteString("\x1b[H\x1b[2J")
	}
	t.draw(&b)

	_, err := io.WriteString(t.out, b.String())
	return err
}

// Frame returns the current frame without writing it
func (t *Terminal) Frame() string {
	var b strings.Builder
	t.draw(&b)
	return b.String()
}

func (t *Terminal) draw(b *strings.Builder) {
	width := cellWidth
	// 2 chars of row label, a space per column
	if t.width < Columns*(cellWidth+1)+2 {
		width = compactWidth
	}

	if t.opts.ShowCoordinates {
		b.WriteString("  ")
		for col := 1; col <= Columns; col++ {
			b.WriteString(" ")
			b.WriteString(t.label.Sprint(pad(fmt.Sprint(col), width)))
		}
		b.WriteString("\n")
	}

	for row := 0; row < Rows; row++ {
		if t.opts.ShowCoordinates {
			b.WriteString(t.label.Sprint(string(rune('A' + row))))
			b.WriteString(" ")
		}
		for col := 0; col < Columns; col++ {
			pos := row*Columns + col
			b.WriteString(" ")
			if pos < len(t.tiles) {
				b.WriteString(t.cell(t.tiles[pos], width))
			} else {
				b.WriteString(strings.Repeat(" ", width))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.label.Sprint("Score: ") + t.accent.Sprint(t.score))
	b.WriteString("   ")
	b.WriteString(t.label.Sprintf("You've tried %d times", t.attempts))
	b.WriteString("\n")

	if t.mismatched() {
		msg := "No match"
		if t.color {
			msg = t.palette.Paint(msg, t.palette.Wrong)
		}
		b.WriteString(msg + "\n")
	}

	if t.complete {
		b.WriteString("\n")
		b.WriteString(t.bold.Sprint("Complete!") + "\n")
		b.WriteString(t.label.Sprint("Score: ") + t.accent.Sprint(t.score) + "\n")
		b.WriteString(t.label.Sprint("You've tried: ") + t.accent.Sprintf("%d times", t.attempts) + "\n")
		return
	}

	if t.opts.Prompt != "" {
		b.WriteString("\n" + t.opts.Prompt)
	}
}

func (t *Terminal) mismatched() bool {
	for _, tile := range t.tiles {
		if tile.wrong {
			return true
		}
	}
	return false
}

func (t *Terminal) cell(tile tileView, width int) string {
	if !tile.faceUp && !tile.paired {
		back := strings.Repeat("░", width)
		if !t.color {
			return back
		}
		return t.palette.Paint(back, t.palette.Back)
	}

	text := faceText(tile.id, width)
	if !t.color {
		if tile.wrong {
			return markWrong(text)
		}
		return text
	}

	switch {
	case tile.wrong:
		return t.palette.PaintOn(text, t.palette.Black, t.palette.Wrong)
	case tile.paired:
		return t.palette.Paint(text, t.palette.Paired)
	case tile.id.Suit().IsRed():
		return t.palette.Paint(text, t.palette.Red)
	default:
		return t.palette.Paint(text, t.palette.Black)
	}
}

// faceText renders rank and suit in exactly width visible columns
func faceText(id card.ID, width int) string {
	rank := id.RankLabel()
	if width < cellWidth && rank == "10" {
		rank = "T"
	}
	return pad(rank+id.Suit().Symbol(), width)
}

// markWrong puts a '!' in the leading pad column, if there is one
func markWrong(text string) string {
	runes := []rune(text)
	if len(runes) == 0 || runes[0] != ' ' {
		return text
	}
	runes[0] = '!'
	return string(runes)
}

// pad right-aligns s to width visible columns
func pad(s string, width int) string {
	n := len([]rune(stripAnsi(s)))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' || c == 'J' || c == 'H' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

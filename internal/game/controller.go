package game

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/arcanaland/concentration/internal/card"
	"github.com/arcanaland/concentration/internal/shuffle"
)

// DefaultMismatchDelay is how long a mismatched pair stays face-up
const DefaultMismatchDelay = 1000 * time.Millisecond

// Display renders the board. The controller is its only caller.
type Display interface {
	RenderBoard(board []card.ID)
	Reveal(position int, id card.ID)
	Cover(position int, id card.ID)
	MarkPaired(positions ...int)
	PlayMismatchCue(positions ...int)
	UpdateScore(score int)
	UpdateAttempts(attempts int)
	ShowCompletion(score, attempts int)
}

// Scheduler runs fn once after d. Implementations decide which goroutine
// fn runs on; Session makes sure it is the game loop.
type Scheduler interface {
	Schedule(d time.Duration, fn func())
}

// Shuffler returns a permutation of 0..n-1
type Shuffler func(n int) []int

// Option configures a Controller
type Option func(*Controller)

// WithShuffler replaces the random deal, e.g. with a seeded one
func WithShuffler(s Shuffler) Option {
	return func(c *Controller) { c.shuffler = s }
}

// WithMismatchDelay sets how long a failed pair stays visible
func WithMismatchDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithScheduler sets where the delayed reset is queued
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// Controller is the turn state machine. It is not safe for concurrent use.
type Controller struct {
	state     State
	model     *Model
	board     []card.ID
	positions [card.DeckSize]int
	tiles     []TileStatus

	display   Display
	scheduler Scheduler
	shuffler  Shuffler
	delay     time.Duration
	logger    *slog.Logger
}

// NewController builds a controller. Start must be called before Select.
func NewController(display Display, opts ...Option) *Controller {
	c := &Controller{
		state:     AwaitingFirstCard,
		model:     newModel(),
		display:   display,
		scheduler: &ManualScheduler{},
		shuffler:  func(n int) []int { return shuffle.Permutation(n, nil) },
		delay:     DefaultMismatchDelay,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "turn_controller")
	return c
}

// Start deals a new board, zeroes the model and renders face-down tiles
func (c *Controller) Start() {
	order := c.shuffler(card.DeckSize)
	if len(order) != card.DeckSize {
		panic(fmt.Sprintf("game: shuffler returned %d cards, want %d", len(order), card.DeckSize))
	}

	c.board = make([]card.ID, card.DeckSize)
	c.tiles = make([]TileStatus, card.DeckSize)
	for pos, v := range order {
		id := card.ID(v)
		c.board[pos] = id
		c.positions[id] = pos
	}
	c.model = newModel()
	c.state = AwaitingFirstCard

	c.logger.Debug("board dealt", "cards", len(c.board))
	c.display.RenderBoard(c.Board())
}

// Select handles the player choosing the tile at position. It reports
// whether the selection was accepted; rejected selections change nothing.
func (c *Controller) Select(position int) bool {
	if position < 0 || position >= len(c.board) || c.tiles[position] != FaceDown {
		return false
	}
	id := c.board[position]

	switch c.state {
	case AwaitingFirstCard:
		c.reveal(position, id)
		c.state = AwaitingSecondCard
	case AwaitingSecondCard:
		c.model.incrementAttempts()
		c.display.UpdateAttempts(c.model.Attempts())
		c.reveal(position, id)
		c.judge()
	case MatchFailed, MatchSucceeded, Finished:
		return false
	default:
		panic(fmt.Sprintf("game: unhandled state %v", c.state))
	}

	c.logger.Debug("card selected",
		"position", position,
		"card", id.String(),
		"state", c.state.String(),
		"revealed", c.model.Revealed(),
		"score", c.model.Score(),
		"attempts", c.model.Attempts())
	return true
}

// SelectCard selects whichever position holds id
func (c *Controller) SelectCard(id card.ID) bool {
	if !id.Valid() || c.board == nil {
		return false
	}
	return c.Select(c.positions[id])
}

func (c *Controller) reveal(position int, id card.ID) {
	c.tiles[position] = FaceUp
	c.display.Reveal(position, id)
	c.model.recordReveal(id)
}

// judge settles the two revealed cards. Only reachable from the second reveal.
func (c *Controller) judge() {
	revealed := c.model.Revealed()
	first, second := c.positions[revealed[0]], c.positions[revealed[1]]

	if !c.model.isMatch() {
		c.state = MatchFailed
		c.display.PlayMismatchCue(first, second)
		c.scheduler.Schedule(c.delay, c.resetMismatch)
		return
	}

	c.state = MatchSucceeded
	c.model.addScore(ScoreIncrement)
	c.display.UpdateScore(c.model.Score())
	c.tiles[first], c.tiles[second] = Paired, Paired
	c.display.MarkPaired(first, second)
	c.model.clearRevealed()

	if c.model.Score() >= TerminalScore {
		c.state = Finished
		c.logger.Info("game finished", "score", c.model.Score(), "attempts", c.model.Attempts())
		c.display.ShowCompletion(c.model.Score(), c.model.Attempts())
		return
	}
	c.state = AwaitingFirstCard
}

// resetMismatch turns a failed pair back over. It runs once per failed pair.
func (c *Controller) resetMismatch() {
	if c.state != MatchFailed {
		c.logger.Warn("mismatch reset outside match_failed", "state", c.state.String())
		return
	}

	for _, id := range c.model.Revealed() {
		pos := c.positions[id]
		c.tiles[pos] = FaceDown
		c.display.Cover(pos, id)
	}
	c.model.clearRevealed()
	c.state = AwaitingFirstCard

	c.logger.Debug("mismatch reset", "state", c.state.String())
}

func (c *Controller) State() State {
	return c.state
}

// Model exposes the read-only bookkeeping
func (c *Controller) Model() *Model {
	return c.model
}

// Board returns a copy of the dealt layout, position order
func (c *Controller) Board() []card.ID {
	out := make([]card.ID, len(c.board))
	copy(out, c.board)
	return out
}

// Tile returns the status of a position; out-of-range positions read as Paired
func (c *Controller) Tile(position int) TileStatus {
	if position < 0 || position >= len(c.tiles) {
		return Paired
	}
	return c.tiles[position]
}

// PositionOf returns where id lies on the board
func (c *Controller) PositionOf(id card.ID) (int, bool) {
	if !id.Valid() || c.board == nil {
		return 0, false
	}
	return c.positions[id], true
}

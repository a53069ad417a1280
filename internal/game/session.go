package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ErrSessionStarted is returned when Run is called more than once
var ErrSessionStarted = errors.New("session already started")

// Flusher is implemented by displays that buffer drawing. The session
// flushes after every processed event.
type Flusher interface {
	Flush() error
}

// Result summarises a session when its loop exits
type Result struct {
	SessionID  uuid.UUID
	Score      int
	Attempts   int
	Finished   bool
	Selections []int // accepted positions, in order
}

// Session is the game loop. It owns a controller and feeds it user
// selections and delayed resets from a single goroutine.
type Session struct {
	ID         uuid.UUID
	controller *Controller
	display    Display
	logger     *slog.Logger

	deferred chan func()
	done     chan struct{}
	timers   []*time.Timer
	accepted []int
	started  bool
}

// NewSession creates a session whose delayed resets run on the loop.
// Any WithScheduler option is overridden.
func NewSession(display Display, logger *slog.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		ID:       uuid.New(),
		display:  display,
		deferred: make(chan func()),
		done:     make(chan struct{}),
	}
	s.logger = logger.With("component", "session", "session_id", s.ID.String())

	opts = append(opts, WithLogger(s.logger), WithScheduler(timerScheduler{s: s}))
	s.controller = NewController(display, opts...)
	return s
}

// Controller returns the session's state machine for inspection
func (s *Session) Controller() *Controller {
	return s.controller
}

// Run deals the board and processes selections until the game finishes,
// the selections channel closes, or ctx is cancelled. Pending resets are
// dropped on exit.
func (s *Session) Run(ctx context.Context, selections <-chan int) (Result, error) {
	if s.started {
		return Result{}, ErrSessionStarted
	}
	s.started = true
	defer s.stop()

	s.controller.Start()
	s.flush()
	s.logger.Info("session started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session cancelled", "error", ctx.Err())
			return s.result(), ctx.Err()

		case pos, ok := <-selections:
			if !ok {
				s.logger.Info("input closed", "state", s.controller.State().String())
				return s.result(), nil
			}
			if s.controller.Select(pos) {
				s.accepted = append(s.accepted, pos)
			} else {
				s.logger.Debug("selection ignored", "position", pos, "state", s.controller.State().String())
			}
			s.flush()

		case fn := <-s.deferred:
			fn()
			s.flush()
		}

		if s.controller.State() == Finished {
			return s.result(), nil
		}
	}
}

func (s *Session) result() Result {
	m := s.controller.Model()
	selections := make([]int, len(s.accepted))
	copy(selections, s.accepted)
	return Result{
		SessionID:  s.ID,
		Score:      m.Score(),
		Attempts:   m.Attempts(),
		Finished:   s.controller.State() == Finished,
		Selections: selections,
	}
}

func (s *Session) flush() {
	f, ok := s.display.(Flusher)
	if !ok {
		return
	}
	if err := f.Flush(); err != nil {
		s.logger.Warn("display flush failed", "error", err)
	}
}

func (s *Session) stop() {
	close(s.done)
	for _, t := range s.timers {
		t.Stop()
	}
}

// timerScheduler posts callbacks back onto the session loop
type timerScheduler struct {
	s *Session
}

func (t timerScheduler) Schedule(d time.Duration, fn func()) {
	s := t.s
	timer := time.AfterFunc(d, func() {
		select {
		case s.deferred <- fn:
		case <-s.done:
		}
	})
	s.timers = append(s.timers, timer)
}

package validator

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/arcanaland/concentration/internal/card"
	"github.com/arcanaland/concentration/internal/game"
	"github.com/arcanaland/concentration/internal/input"
	"github.com/arcanaland/concentration/internal/record"
	"github.com/arcanaland/concentration/internal/shuffle"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string

	// Replayed outcome
	Score    int
	Tries    int
	Finished bool
}

type Validator struct {
	RecordPath string
	Results    ValidationResults
	logger     *slog.Logger
}

func NewValidator(recordPath string, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		RecordPath: recordPath,
		Results:    ValidationResults{},
		logger:     logger.With("component", "replay_validator"),
	}
}

// Validate loads the record and replays it. The returned error is only for
// records that cannot be read at all; rule violations land in Results.
func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.RecordPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("record not found: %s", v.RecordPath)
	}

	r, err := record.Load(v.RecordPath)
	if err != nil {
		return v.Results, err
	}

	v.ValidateRecord(r)
	return v.Results, nil
}

// ValidateRecord replays r against a board rebuilt from its seed
func (v *Validator) ValidateRecord(r *record.Record) ValidationResults {
	v.validateHeader(r)
	v.replay(r)
	v.validateResult(r)
	return v.Results
}

func (v *Validator) validateHeader(r *record.Record) {
	if r.SessionID == uuid.Nil {
		v.Results.Warnings = append(v.Results.Warnings, "session_id is missing")
	}
	if r.StartedAt.IsZero() {
		v.Results.Warnings = append(v.Results.Warnings, "started_at is missing")
	}
	if r.MismatchDelayMS < 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("mismatch_delay_ms is negative: %d", r.MismatchDelayMS))
	}
	if len(r.Selections) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "no selections recorded")
	}
}

// replay feeds every selection to a fresh controller. Delayed resets are
// run before the next selection, as if the player waited for them.
func (v *Validator) replay(r *record.Record) {
	sched := &game.ManualScheduler{}
	seed := uint64(r.Seed)
	c := game.NewController(game.NopDisplay{},
		game.WithShuffler(func(n int) []int { return shuffle.Permutation(n, shuffle.Seeded(seed)) }),
		game.WithScheduler(sched),
		game.WithLogger(v.logger))
	c.Start()

	for i, pos := range r.Selections {
		sched.RunPending()

		if pos < 0 || pos >= card.DeckSize {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("selection %d: position %d out of range [0, %d)", i+1, pos, card.DeckSize))
			continue
		}

		if c.State() == game.Finished {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("selection %d: %s chosen after the game finished", i+1, input.Format(pos)))
			continue
		}

		tile := c.Tile(pos)
		if !c.Select(pos) {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("selection %d: %s was not selectable (%s)", i+1, input.Format(pos), tile))
		}
	}
	sched.RunPending()

	v.Results.Score = c.Model().Score()
	v.Results.Tries = c.Model().Attempts()
	v.Results.Finished = c.State() == game.Finished
}

func (v *Validator) validateResult(r *record.Record) {
	if r.Result.Score != v.Results.Score {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("recorded score %d does not match replayed score %d", r.Result.Score, v.Results.Score))
	}
	if r.Result.Tries != v.Results.Tries {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("recorded tries %d does not match replayed tries %d", r.Result.Tries, v.Results.Tries))
	}
	if r.Result.Finished != v.Results.Finished {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("recorded finished=%t but replay finished=%t", r.Result.Finished, v.Results.Finished))
	}
	if !v.Results.Finished {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("game was not finished (%d of %d pairs matched)",
				v.Results.Score/game.ScoreIncrement, card.DeckSize/2))
	}
}

package validator

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/concentration/internal/card"
	"github.com/arcanaland/concentration/internal/record"
	"github.com/arcanaland/concentration/internal/shuffle"
)

const seed = 2024

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// positions maps card ids to where the seeded deal put them
func positions() map[int]int {
	where := map[int]int{}
	for pos, id := range shuffle.Permutation(card.DeckSize, shuffle.Seeded(seed)) {
		where[id] = pos
	}
	return where
}

func perfectGame() *record.Record {
	where := positions()
	var selections []int
	for rank := 0; rank < card.RanksPerSuit; rank++ {
		selections = append(selections,
			where[rank], where[rank+13],
			where[rank+26], where[rank+39])
	}
	return &record.Record{
		SessionID:       uuid.New(),
		Seed:            seed,
		StartedAt:       time.Now(),
		MismatchDelayMS: 1000,
		Selections:      selections,
		Result:          record.ResultSection{Score: 260, Tries: 26, Finished: true},
	}
}

func TestValidRecord(t *testing.T) {
	v := NewValidator("", quietLogger())
	res := v.ValidateRecord(perfectGame())

	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 260, res.Score)
	assert.Equal(t, 26, res.Tries)
	assert.True(t, res.Finished)
}

func TestRecordWithMismatchesReplays(t *testing.T) {
	where := positions()
	r := perfectGame()
	// a wrong guess first; the replay resets it before the next pick
	r.Selections = append([]int{where[0], where[1]}, r.Selections...)
	r.Result.Tries = 27

	res := NewValidator("", quietLogger()).ValidateRecord(r)
	assert.Empty(t, res.Errors)
	assert.Equal(t, 27, res.Tries)
}

func TestTamperedResult(t *testing.T) {
	r := perfectGame()
	r.Result.Tries = 20

	res := NewValidator("", quietLogger()).ValidateRecord(r)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "recorded tries 20")
}

func TestIllegalSelections(t *testing.T) {
	where := positions()
	r := perfectGame()
	r.Selections = []int{where[5], where[18], where[5], 99}
	r.Result = record.ResultSection{Score: 10, Tries: 1}

	res := NewValidator("", quietLogger()).ValidateRecord(r)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "selection 3")
	assert.Contains(t, res.Errors[0], "paired")
	assert.Contains(t, res.Errors[1], "out of range")
	assert.Contains(t, res.Warnings, "game was not finished (1 of 26 pairs matched)")
}

func TestSelectionAfterFinish(t *testing.T) {
	r := perfectGame()
	r.Selections = append(r.Selections, 0)

	res := NewValidator("", quietLogger()).ValidateRecord(r)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "after the game finished")
}

func TestValidateFromFile(t *testing.T) {
	dir := t.TempDir()
	path, err := record.Save(perfectGame(), dir)
	require.NoError(t, err)

	res, err := NewValidator(path, quietLogger()).Validate()
	require.NoError(t, err)
	assert.Empty(t, res.Errors)

	_, err = NewValidator(filepath.Join(dir, "nope.toml"), quietLogger()).Validate()
	assert.Error(t, err)
}

func TestEmptyRecordWarns(t *testing.T) {
	res := NewValidator("", quietLogger()).ValidateRecord(&record.Record{Seed: seed})

	assert.Empty(t, res.Errors)
	assert.Contains(t, res.Warnings, "session_id is missing")
	assert.Contains(t, res.Warnings, "started_at is missing")
	assert.Contains(t, res.Warnings, "no selections recorded")
}

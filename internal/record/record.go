// Package record stores finished or abandoned games as TOML files.
package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/arcanaland/concentration/internal/game"
)

// ErrNoSeed is returned when a record file has no seed to rebuild the board from
var ErrNoSeed = errors.New("record has no seed")

// Record is one game: how the board was dealt and which tiles were picked
type Record struct {
	SessionID       uuid.UUID     `toml:"session_id"`
	Seed            int64         `toml:"seed"`
	StartedAt       time.Time     `toml:"started_at"`
	MismatchDelayMS int           `toml:"mismatch_delay_ms"`
	Selections      []int         `toml:"selections"`
	Result          ResultSection `toml:"result"`
}

// ResultSection is what the player ended the game with
type ResultSection struct {
	Score    int  `toml:"score"`
	Tries    int  `toml:"tries"`
	Finished bool `toml:"finished"`
}

// FromResult builds a record from a session result
func FromResult(res game.Result, seed int64, startedAt time.Time, delay time.Duration) *Record {
	selections := make([]int, len(res.Selections))
	copy(selections, res.Selections)
	return &Record{
		SessionID:       res.SessionID,
		Seed:            seed,
		StartedAt:       startedAt.UTC().Truncate(time.Second),
		MismatchDelayMS: int(delay / time.Millisecond),
		Selections:      selections,
		Result: ResultSection{
			Score:    res.Score,
			Tries:    res.Attempts,
			Finished: res.Finished,
		},
	}
}

// FileName returns the name Save uses for r
func (r *Record) FileName() string {
	id := r.SessionID.String()
	return fmt.Sprintf("%s-%s.toml", r.StartedAt.UTC().Format("20060102-150405"), id[:8])
}

// Load reads a record file
func Load(path string) (*Record, error) {
	var r Record
	md, err := toml.DecodeFile(path, &r)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
	}
	if !md.IsDefined("seed") {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrNoSeed)
	}
	return &r, nil
}

// Write encodes r to path, replacing any existing file
func Write(r *Record, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating record file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(r); err != nil {
		return fmt.Errorf("error encoding record: %w", err)
	}
	return nil
}

// Save writes r into dir under FileName and returns the full path
func Save(r *Record, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating records directory: %w", err)
	}
	path := filepath.Join(dir, r.FileName())
	if err := Write(r, path); err != nil {
		return "", err
	}
	return path, nil
}

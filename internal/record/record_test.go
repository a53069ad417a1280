package record

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/concentration/internal/game"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	id := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	started := time.Date(2026, 3, 1, 12, 30, 45, 999, time.UTC)

	r := FromResult(game.Result{
		SessionID:  id,
		Score:      10,
		Attempts:   2,
		Selections: []int{0, 1, 5, 18},
	}, 42, started, 1500*time.Millisecond)

	path, err := Save(r, filepath.Join(dir, "records"))
	require.NoError(t, err)
	assert.Equal(t, "20260301-123045-1b4e28ba.toml", filepath.Base(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, id, got.SessionID)
	assert.Equal(t, int64(42), got.Seed)
	assert.True(t, started.Truncate(time.Second).Equal(got.StartedAt))
	assert.Equal(t, 1500, got.MismatchDelayMS)
	assert.Equal(t, []int{0, 1, 5, 18}, got.Selections)
	assert.Equal(t, ResultSection{Score: 10, Tries: 2}, got.Result)
}

func TestLoadRequiresSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.toml")
	require.NoError(t, os.WriteFile(path, []byte("selections = [1, 2]\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoSeed)
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = [\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

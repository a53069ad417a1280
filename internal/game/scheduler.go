package game

import (
	"time"

	"github.com/arcanaland/concentration/internal/card"
)

// ManualScheduler queues callbacks until RunPending is called. Replays and
// tests use it to decide exactly when a delayed reset happens.
type ManualScheduler struct {
	pending []scheduled
}

type scheduled struct {
	delay time.Duration
	fn    func()
}

func (m *ManualScheduler) Schedule(d time.Duration, fn func()) {
	m.pending = append(m.pending, scheduled{delay: d, fn: fn})
}

// Pending returns the number of queued callbacks
func (m *ManualScheduler) Pending() int {
	return len(m.pending)
}

// LastDelay returns the delay of the most recently queued callback
func (m *ManualScheduler) LastDelay() time.Duration {
	if len(m.pending) == 0 {
		return 0
	}
	return m.pending[len(m.pending)-1].delay
}

// RunPending fires every queued callback in order and returns how many ran
func (m *ManualScheduler) RunPending() int {
	n := 0
	for len(m.pending) > 0 {
		next := m.pending[0]
		m.pending = m.pending[1:]
		next.fn()
		n++
	}
	return n
}

// NopDisplay discards every call
type NopDisplay struct{}

func (NopDisplay) RenderBoard([]card.ID) {}
func (NopDisplay) Reveal(int, card.ID) {}
func (NopDisplay) Cover(int, card.ID) {}
func (NopDisplay) MarkPaired(...int) {}
func (NopDisplay) PlayMismatchCue(...int) {}
func (NopDisplay) UpdateScore(int) {}
func (NopDisplay) UpdateAttempts(int) {}
func (NopDisplay) ShowCompletion(int, int) {}

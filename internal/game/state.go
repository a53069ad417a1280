package game

import "fmt"

// State is the turn controller's position in a round
type State int

const (
	// AwaitingFirstCard is the initial state: no card is face-up for judgment.
	AwaitingFirstCard State = iota
	// AwaitingSecondCard means one card is revealed and waiting for its partner.
	AwaitingSecondCard
	// MatchFailed holds while a mismatched pair waits for its delayed reset.
	MatchFailed
	// MatchSucceeded is entered while a matched pair is being settled.
	MatchSucceeded
	// Finished is terminal: every pair has been matched.
	Finished
)

func (s State) String() string {
	switch s {
	case AwaitingFirstCard:
		return "awaiting_first_card"
	case AwaitingSecondCard:
		return "awaiting_second_card"
	case MatchFailed:
		return "match_failed"
	case MatchSucceeded:
		return "match_succeeded"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TileStatus is the presentation state of one board position
type TileStatus int

const (
	FaceDown TileStatus = iota
	FaceUp
	Paired
)

func (t TileStatus) String() string {
	switch t {
	case FaceDown:
		return "face_down"
	case FaceUp:
		return "face_up"
	case Paired:
		return "paired"
	default:
		return fmt.Sprintf("TileStatus(%d)", int(t))
	}
}

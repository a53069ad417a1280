package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DeckSize is the number of cards on a board
	DeckSize = 52
	// RanksPerSuit is the number of ranks in each suit
	RanksPerSuit = 13
)

// ErrInvalidCard is returned when a card reference cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// ID identifies a card in [0, DeckSize). Suit is id/13, rank is id%13+1.
type ID int

// Suit is one of the four cosmetic card categories
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitNames = [...]string{"spades", "hearts", "diamonds", "clubs"}
var suitLetters = [...]string{"S", "H", "D", "C"}
var suitSymbols = [...]string{"♠", "♥", "♦", "♣"}

var rankNames = [...]string{
	"ace", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "jack", "queen", "king",
}

// Card describes a card for display
type Card struct {
	ID    ID
	Name  string // e.g. "Six of Hearts"
	Suit  Suit
	Rank  int    // 1..13
	Label string // A, 2..10, J, Q, K
}

func (s Suit) String() string {
	if s < Spades || s > Clubs {
		return "unknown"
	}
	return suitNames[s]
}

// Letter returns the one-letter suit code used in labels
func (s Suit) Letter() string {
	if s < Spades || s > Clubs {
		return "?"
	}
	return suitLetters[s]
}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	if s < Spades || s > Clubs {
		return "•"
	}
	return suitSymbols[s]
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether id is inside the deck
func (id ID) Valid() bool {
	return id >= 0 && id < DeckSize
}

func (id ID) Suit() Suit {
	return Suit(int(id) / RanksPerSuit)
}

// Rank returns the card value, 1 (ace) through 13 (king)
func (id ID) Rank() int {
	return int(id)%RanksPerSuit + 1
}

// RankLabel returns the printed rank: A, 2..10, J, Q or K
func (id ID) RankLabel() string {
	return rankLabel(id.Rank())
}

// String returns the short label, e.g. "AS" or "10H"
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return id.RankLabel() + id.Suit().Letter()
}

// Info returns the descriptive form of a card
func Info(id ID) Card {
	rankName := rankNames[id.Rank()-1]
	suitName := id.Suit().String()
	return Card{
		ID:    id,
		Name:  fmt.Sprintf("%s of %s", capitalize(rankName), capitalize(suitName)),
		Suit:  id.Suit(),
		Rank:  id.Rank(),
		Label: id.RankLabel(),
	}
}

// Match reports whether two cards share a rank. Suits are ignored.
func Match(a, b ID) bool {
	return int(a)%RanksPerSuit == int(b)%RanksPerSuit
}

// Parse accepts either a numeric id ("18") or a label ("6H", "10d", "as")
func Parse(s string) (ID, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidCard)
	}

	if n, err := strconv.Atoi(s); err == nil {
		id := ID(n)
		if !id.Valid() {
			return 0, fmt.Errorf("%w: %d out of range [0, %d)", ErrInvalidCard, n, DeckSize)
		}
		return id, nil
	}

	if len(s) < 2 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidCard, s)
	}

	label, letter := s[:len(s)-1], s[len(s)-1:]
	suit := -1
	for i, l := range suitLetters {
		if l == letter {
			suit = i
			break
		}
	}
	if suit < 0 {
		return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, letter)
	}

	for rank := 1; rank <= RanksPerSuit; rank++ {
		if rankLabel(rank) == label {
			return ID(suit*RanksPerSuit + rank - 1), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, label)
}

func rankLabel(rank int) string {
	switch rank {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return strconv.Itoa(rank)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

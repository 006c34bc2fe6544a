package poker

import (
	"errors"
	"fmt"
	"strings"
)

// Rank is the ASCII symbol of a card rank, as stored in hand records.
type Rank byte

// Suit is an opaque suit code. Only equality between suits matters when
// evaluating a hand.
type Suit byte

// Rank symbols, lowest to highest
const (
	Two   Rank = '2'
	Three Rank = '3'
	Four  Rank = '4'
	Five  Rank = '5'
	Six   Rank = '6'
	Seven Rank = '7'
	Eight Rank = '8'
	Nine  Rank = '9'
	Ten   Rank = 'T'
	Jack  Rank = 'J'
	Queen Rank = 'Q'
	King  Rank = 'K'
	Ace   Rank = 'A'
)

// Suit codes
const (
	Clubs    Suit = 'C'
	Diamonds Suit = 'D'
	Hearts   Suit = 'H'
	Spades   Suit = 'S'
)

// HandSize is the number of cards in a hand.
const HandSize = 5

var (
	// ErrInvalidCard is returned for an unrecognised rank or suit.
	ErrInvalidCard = errors.New("invalid card")
	// ErrHandSize is returned when a hand does not have exactly five cards.
	ErrHandSize = errors.New("hand must have exactly 5 cards")
	// ErrDuplicateCard is returned when the same card appears twice.
	ErrDuplicateCard = errors.New("duplicate card")
)

// Ranks lists every rank from lowest to highest.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Suits lists every recognised suit.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// Valid reports whether r is one of the 13 rank symbols.
func (r Rank) Valid() bool {
	return rankIndex[r] != 0
}

// Index returns the 0-based position of r in the low-to-high ordering,
// or -1 for an unrecognised symbol.
func (r Rank) Index() int {
	return int(rankIndex[r]) - 1
}

func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(r)
}

// Valid reports whether s is one of the four suit codes.
func (s Suit) Valid() bool {
	switch s {
	case Clubs, Diamonds, Hearts, Spades:
		return true
	}
	return false
}

func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return string(s)
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard returns the card with the given rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether both rank and suit are recognised.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// String returns the two-character form, e.g. "AS" or "TD".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a string like "AS" or "th" into a Card.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank := Rank(upper(s[0]))
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %q", ErrInvalidCard, s[0])
	}

	suit := Suit(upper(s[1]))
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: suit %q", ErrInvalidCard, s[1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// Hand is exactly five cards. Build hands with NewHand or ParseHand to get
// validation; Evaluate itself assumes a well-formed hand.
type Hand [HandSize]Card

// NewHand validates cards and returns them as a Hand.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}

	for i, c := range cards {
		if !c.Valid() {
			return h, fmt.Errorf("%w: %q at position %d", ErrInvalidCard, []byte{byte(c.Rank), byte(c.Suit)}, i)
		}
		for j := 0; j < i; j++ {
			if cards[j] == c {
				return h, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
			}
		}
		h[i] = c
	}
	return h, nil
}

// MustHand is like NewHand but panics on invalid input. Intended for tests
// and constant hands.
func MustHand(cards ...Card) Hand {
	h, err := NewHand(cards...)
	if err != nil {
		panic(err)
	}
	return h
}

// ParseHand parses five whitespace-separated cards, e.g. "AS KS QS JS TS".
func ParseHand(s string) (Hand, error) {
	fields := strings.Fields(s)
	if len(fields) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d in %q", ErrHandSize, len(fields), s)
	}

	var cards [HandSize]Card
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return Hand{}, err
		}
		cards[i] = c
	}
	return NewHand(cards[:]...)
}

// MustParseHand is like ParseHand but panics on invalid input.
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Contains reports whether c is one of the hand's cards.
func (h Hand) Contains(c Card) bool {
	for _, hc := range h {
		if hc == c {
			return true
		}
	}
	return false
}

func (h Hand) String() string {
	var b strings.Builder
	for i, c := range h {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

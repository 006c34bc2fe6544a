// Package record reads and writes heads-up games stored as fixed-size
// records.
//
// A record is 31 bytes: two hands of five cards, each card three bytes
// (rank symbol, suit code, pad), followed by one trailing pad byte. Pad
// bytes are ignored when reading. The writer uses ' ' between cards, '\r'
// after the last card and '\n' as the trailing byte, so a record file is
// also a CRLF text file with one game per line.
package record

import (
	"errors"
	"fmt"

	"github.com/lox/handvalue/poker"
)

const (
	cardSize = 3
	handSize = poker.HandSize * cardSize

	// Size is the length in bytes of one record.
	Size = Players*handSize + 1
)

// Players is the number of hands per game.
const Players = 2

const (
	cardPad     = ' '
	lastCardPad = '\r'
	recordPad   = '\n'
)

var (
	// ErrShortRecord is returned when fewer than Size bytes are available.
	ErrShortRecord = errors.New("short record")
	// ErrSharedCard is returned when both players hold the same card.
	ErrSharedCard = errors.New("card held by both players")
	// ErrOutOfRange is returned for a record index outside the source.
	ErrOutOfRange = errors.New("record index out of range")
)

// Game is one heads-up deal: player one's hand, then player two's.
type Game struct {
	Hands [Players]poker.Hand
}

// Validate checks that no card is shared between the two hands. Each hand
// is assumed to be valid on its own.
func (g Game) Validate() error {
	for _, c := range g.Hands[1] {
		if g.Hands[0].Contains(c) {
			return fmt.Errorf("%w: %s", ErrSharedCard, c)
		}
	}
	return nil
}

// Values evaluates both hands.
func (g Game) Values() (one, two poker.Value) {
	return poker.Evaluate(g.Hands[0]), poker.Evaluate(g.Hands[1])
}

// Winner returns 1 if player one wins, -1 if player two wins, 0 for a tie.
func (g Game) Winner() int {
	one, two := g.Values()
	return poker.Compare(one, two)
}

func (g Game) String() string {
	return g.Hands[0].String() + " | " + g.Hands[1].String()
}

// Decode parses the first Size bytes of b.
func Decode(b []byte) (Game, error) {
	var g Game
	if len(b) < Size {
		return g, fmt.Errorf("%w: %d of %d bytes", ErrShortRecord, len(b), Size)
	}

	for p := range g.Hands {
		var cards [poker.HandSize]poker.Card
		for c := range cards {
			off := p*handSize + c*cardSize
			cards[c] = poker.Card{Rank: poker.Rank(b[off]), Suit: poker.Suit(b[off+1])}
		}
		h, err := poker.NewHand(cards[:]...)
		if err != nil {
			return Game{}, fmt.Errorf("player %d: %w", p+1, err)
		}
		g.Hands[p] = h
	}

	if err := g.Validate(); err != nil {
		return Game{}, err
	}
	return g, nil
}

// AppendGame appends the record form of g to dst.
func AppendGame(dst []byte, g Game) []byte {
	for p, h := range g.Hands {
		for c, card := range h {
			pad := byte(cardPad)
			if p == Players-1 && c == poker.HandSize-1 {
				pad = lastCardPad
			}
			dst = append(dst, byte(card.Rank), byte(card.Suit), pad)
		}
	}
	return append(dst, recordPad)
}

// Games is an in-memory list of games.
type Games []Game

// Len returns the number of games.
func (gs Games) Len() int { return len(gs) }

// Game returns game i.
func (gs Games) Game(i int) (Game, error) {
	if i < 0 || i >= len(gs) {
		return Game{}, fmt.Errorf("%w: %d of %d", ErrOutOfRange, i, len(gs))
	}
	return gs[i], nil
}

// Deal reshuffles d and deals one game from it.
func Deal(d *poker.Deck) Game {
	var g Game
	d.Shuffle()
	for p := range g.Hands {
		g.Hands[p], _ = d.DealHand()
	}
	return g
}

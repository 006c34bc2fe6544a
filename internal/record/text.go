package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lox/handvalue/poker"
)

// ErrMalformedLine is returned for a text line without exactly ten cards.
var ErrMalformedLine = errors.New("malformed game line")

// ParseLine parses one game written as ten whitespace-separated cards,
// player one's five first, e.g. "8C TS KC 9H 4S 7D 2S 5D 3S AC".
func ParseLine(line string) (Game, error) {
	var g Game
	fields := strings.Fields(line)
	if len(fields) != Players*poker.HandSize {
		return g, fmt.Errorf("%w: want %d cards, got %d", ErrMalformedLine, Players*poker.HandSize, len(fields))
	}

	for p := range g.Hands {
		var cards [poker.HandSize]poker.Card
		for c := range cards {
			card, err := poker.ParseCard(fields[p*poker.HandSize+c])
			if err != nil {
				return Game{}, fmt.Errorf("player %d: %w", p+1, err)
			}
			cards[c] = card
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

// Scanner reads games from text, one per line. Blank lines are skipped and
// both LF and CRLF line endings are accepted.
type Scanner struct {
	s    *bufio.Scanner
	game Game
	line int
	err  error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{s: bufio.NewScanner(r)}
}

// Scan advances to the next game. It returns false at the end of input or
// on the first error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		s.line++
		text := s.s.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		g, err := ParseLine(text)
		if err != nil {
			s.err = fmt.Errorf("line %d: %w", s.line, err)
			return false
		}
		s.game = g
		return true
	}
	s.err = s.s.Err()
	return false
}

// Game returns the most recently scanned game.
func (s *Scanner) Game() Game { return s.game }

// Line returns the line number of the most recently read line.
func (s *Scanner) Line() int { return s.line }

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error { return s.err }

// ReadAll reads every game from r.
func ReadAll(r io.Reader) (Games, error) {
	var games Games
	s := NewScanner(r)
	for s.Scan() {
		games = append(games, s.Game())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/handvalue/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// EvalCmd prints the encoded value of one or two hands.
type EvalCmd struct {
	Cards []string `arg:"" help:"Five or ten cards, e.g. 'AS KS QS JS TS' '2C 2D 9H 9S KD'"`
}

func (e *EvalCmd) Run(out io.Writer) error {
	hands, err := parseHands(e.Cards)
	if err != nil {
		return err
	}

	values := make([]poker.Value, len(hands))
	for i, h := range hands {
		values[i] = poker.Evaluate(h)
		printHand(out, i+1, h, values[i])
	}

	if len(hands) == 2 {
		fmt.Fprintln(out, winner(poker.Compare(values[0], values[1])))
	}
	return nil
}

// parseHands splits the card arguments into one or two hands. Cards may be
// passed as separate arguments or quoted together.
func parseHands(args []string) ([]poker.Hand, error) {
	fields := strings.Fields(strings.Join(args, " "))
	if len(fields) != poker.HandSize && len(fields) != 2*poker.HandSize {
		return nil, fmt.Errorf("expected %d or %d cards, got %d", poker.HandSize, 2*poker.HandSize, len(fields))
	}

	var hands []poker.Hand
	for i := 0; i < len(fields); i += poker.HandSize {
		h, err := poker.ParseHand(strings.Join(fields[i:i+poker.HandSize], " "))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", len(hands)+1, err)
		}
		hands = append(hands, h)
	}

	if len(hands) == 2 {
		for _, c := range hands[1] {
			if hands[0].Contains(c) {
				return nil, fmt.Errorf("card %s is in both hands", c)
			}
		}
	}
	return hands, nil
}

func printHand(out io.Writer, player int, h poker.Hand, v poker.Value) {
	fmt.Fprintf(out, "%s %s\n", headerStyle.Render(fmt.Sprintf("Player %d:", player)), handStyle.Render(h.String()))
	fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("Type: "), v.Type())
	fmt.Fprintf(out, "  %s %#016x\n", labelStyle.Render("Value:"), uint64(v))
	fmt.Fprintf(out, "  %s %s\n", labelStyle.Render("Bits: "), v.Bits())
}

func winner(cmp int) string {
	switch cmp {
	case 1:
		return winStyle.Render("Player 1 wins")
	case -1:
		return winStyle.Render("Player 2 wins")
	default:
		return tieStyle.Render("Tie")
	}
}

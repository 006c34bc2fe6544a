package poker

import (
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = len(Ranks) * len(Suits)

// Deck represents a standard 52-card deck
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards[i] = Card{Rank: rank, Suit: suit}
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
// The returned slice aliases the deck and is only valid until the next Shuffle.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealHand deals five cards as a Hand.
func (d *Deck) DealHand() (Hand, bool) {
	var h Hand
	cards := d.Deal(HandSize)
	if cards == nil {
		return h, false
	}
	copy(h[:], cards)
	return h, true
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

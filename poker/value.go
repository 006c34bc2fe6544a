package poker

import (
	"fmt"
	"strings"
)

// Value is the encoded strength of a five-card hand. A larger Value is a
// stronger hand and equal Values are equal hands.
//
// Layout, bit 0 first:
//
//	 0-13  ones lane     one bit per rank held exactly once
//	14-27  pairs lane    one bit per rank held exactly twice
//	28-41  triples lane  one bit per rank held three times
//	42-55  quads lane    one bit per rank held four times
//	   56  straight
//	   57  flush
//	   58  full house
//	   59  four of a kind
//	   60  straight flush
//	   63  reserved, never set
//
// Inside a lane, slot i is rank position i ('2' is slot 1, 'A' slot 13).
// Slot 0 is the ace-low slot: in the ones lane it holds the Ace of a wheel
// straight, in the triples lane it is the two-pair marker. No rank ever
// occupies slot 0, so neither use can collide with a real rank bit.
type Value uint64

// LaneWidth is the number of bits per category lane: 13 ranks plus the
// ace-low slot.
const LaneWidth = 14

const (
	laneMask    = 1<<LaneWidth - 1
	aceLowSlot  = 0
	aceHighSlot = 13
	rankSlots   = laneMask &^ (1 << aceLowSlot)
)

// Lane identifies one of the four category lanes.
type Lane uint

const (
	Ones Lane = iota
	Pairs
	Triples
	Quads
	laneCount
)

func (l Lane) shift() uint {
	return uint(l) * LaneWidth
}

func (l Lane) String() string {
	switch l {
	case Ones:
		return "ones"
	case Pairs:
		return "pairs"
	case Triples:
		return "triples"
	case Quads:
		return "quads"
	default:
		return "unknown"
	}
}

// Flag bit positions, above every lane.
const (
	StraightBit      = 56
	FlushBit         = 57
	FullHouseBit     = 58
	FourOfAKindBit   = 59
	StraightFlushBit = 60
	ReservedBit      = 63
)

// Flags must start above the last lane.
const _ = uint(StraightBit - int(laneCount)*LaneWidth)

const (
	straightFlag      Value = 1 << StraightBit
	flushFlag         Value = 1 << FlushBit
	fullHouseFlag     Value = 1 << FullHouseBit
	fourOfAKindFlag   Value = 1 << FourOfAKindBit
	straightFlushFlag Value = 1 << StraightFlushBit

	twoPairMarker Value = 1 << twoPairBit
)

// twoPairBit is the triples lane's ace-low slot.
const twoPairBit = int(Triples)*LaneWidth + aceLowSlot

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandTypes lists every HandType from weakest to strongest.
var HandTypes = [...]HandType{HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush}

// Lane returns the 14-bit bitmap of lane l.
func (v Value) Lane(l Lane) uint16 {
	return uint16(uint64(v) >> l.shift() & laneMask)
}

// Type decodes the hand category.
func (v Value) Type() HandType {
	switch {
	case v&straightFlushFlag != 0:
		return StraightFlush
	case v&fourOfAKindFlag != 0:
		return FourOfAKind
	case v&fullHouseFlag != 0:
		return FullHouse
	case v&flushFlag != 0:
		return Flush
	case v&straightFlag != 0:
		return Straight
	case v.Lane(Triples)&rankSlots != 0:
		return ThreeOfAKind
	case v&twoPairMarker != 0:
		return TwoPair
	case v.Lane(Pairs) != 0:
		return Pair
	default:
		return HighCard
	}
}

func (v Value) String() string {
	return fmt.Sprintf("%s (%#016x)", v.Type(), uint64(v))
}

// Bits renders v in binary, most significant bit first, with a space between
// the flag byte and each lane.
func (v Value) Bits() string {
	var b strings.Builder
	b.Grow(64 + int(laneCount))
	for i := 63; i >= 0; i-- {
		b.WriteByte('0' + byte(uint64(v)>>i&1))
		if i > 0 && i%LaneWidth == 0 && i < StraightBit || i == StraightBit {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

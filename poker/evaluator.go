package poker

// Per-nibble bit filters over the count word.
const (
	nibbleBit0 = 0x1111111111111111
	nibbleBit1 = 0x2222222222222222
	nibbleBit2 = 0x4444444444444444
)

// Evaluate encodes h into a Value. Stronger hands get larger values.
// The hand is assumed well formed; see NewHand.
func Evaluate(h Hand) Value {
	v := pack(h)
	v = checkStraight(v)
	v = checkFourOfAKind(v)
	v = checkFullHouse(v)
	v = checkFlush(v, h)
	v = checkStraightFlush(v)
	v = checkTwoPair(v)
	return v
}

// EvaluateBatch evaluates hands and writes results into out.
// If out is nil or smaller than hands, a new slice is allocated and returned.
func EvaluateBatch(hands []Hand, out []Value) []Value {
	if len(out) < len(hands) {
		out = make([]Value, len(hands))
	} else {
		out = out[:len(hands)]
	}

	for i, h := range hands {
		out[i] = Evaluate(h)
	}
	return out
}

// Compare compares two values and returns 1 if a wins, -1 if b wins, 0 for tie
func Compare(a, b Value) int {
	if a > b {
		return 1
	} else if a < b {
		return -1
	}
	return 0
}

// countRanks sums rank weights; each rank's nibble ends up holding the
// number of cards of that rank.
func countRanks(h Hand) uint64 {
	return rankWeights[h[0].Rank] +
		rankWeights[h[1].Rank] +
		rankWeights[h[2].Rank] +
		rankWeights[h[3].Rank] +
		rankWeights[h[4].Rank]
}

// categories splits a count word into one flag per rank nibble (bit 0 of
// the nibble) for each multiplicity. Quads are taken first and removed
// from the other masks.
func categories(count uint64) (ones, pairs, triples, quads uint64) {
	quads = (count & nibbleBit2) >> 2
	triples = count & (count >> 1) & nibbleBit0 &^ quads
	ones = count & nibbleBit0 &^ triples &^ quads
	pairs = (count & nibbleBit1) >> 1 &^ triples &^ quads
	return ones, pairs, triples, quads
}

// squeeze gathers bit 0 of every nibble into a dense bitmap: nibble i
// becomes bit i.
func squeeze(flags uint64) uint64 {
	x := flags & nibbleBit0
	x = (x | x>>3) & 0x0303030303030303
	x = (x | x>>6) & 0x000f000f000f000f
	x = (x | x>>12) & 0x000000ff000000ff
	x = (x | x>>24) & 0xffff
	return x
}

func pack(h Hand) Value {
	ones, pairs, triples, quads := categories(countRanks(h))
	return Value(squeeze(ones)<<Ones.shift() |
		squeeze(pairs)<<Pairs.shift() |
		squeeze(triples)<<Triples.shift() |
		squeeze(quads)<<Quads.shift())
}

// nonzero returns 1 if x != 0 and 0 otherwise.
func nonzero(x uint64) uint64 {
	return (x | -x) >> 63
}

func checkStraight(v Value) Value {
	x := uint64(v)
	present := (x | x>>Pairs.shift() | x>>Triples.shift() | x>>Quads.shift()) & laneMask
	present |= present >> aceHighSlot & 1

	run := present & (present >> 2)
	run &= run >> 1
	run &= run >> 1

	// A run starting at the ace-low slot is the wheel: the Ace plays low.
	wheel := run & 1
	x ^= wheel<<aceHighSlot | wheel<<aceLowSlot

	return Value(x | nonzero(run)<<StraightBit)
}

func checkFourOfAKind(v Value) Value {
	return v | Value(nonzero(uint64(v.Lane(Quads))))<<FourOfAKindBit
}

// checkFullHouse ignores the triples lane's ace-low slot so the result does
// not depend on whether the two-pair marker has been set yet.
func checkFullHouse(v Value) Value {
	pairs := nonzero(uint64(v.Lane(Pairs)))
	triples := nonzero(uint64(v.Lane(Triples) & rankSlots))
	return v | Value(pairs&triples)<<FullHouseBit
}

func checkFlush(v Value, h Hand) Value {
	s := h[0].Suit
	diff := (s ^ h[1].Suit) | (s ^ h[2].Suit) | (s ^ h[3].Suit) | (s ^ h[4].Suit)
	return v | Value(1^nonzero(uint64(diff)))<<FlushBit
}

// checkStraightFlush must run after checkStraight and checkFlush.
func checkStraightFlush(v Value) Value {
	x := uint64(v)
	return v | Value((x>>StraightBit)&(x>>FlushBit)&1)<<StraightFlushBit
}

// checkTwoPair marks two or more pairs in the triples lane's ace-low slot,
// above any one-pair hand and below any real triple.
func checkTwoPair(v Value) Value {
	p := uint64(v.Lane(Pairs))
	return v | Value(nonzero(p&(p-1)))<<twoPairBit
}

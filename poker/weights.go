package poker

// Each rank owns one 4-bit lane (a nibble) of the count word. Lane 0 stays
// empty so that rank position i lines up with bit i once the nibbles are
// squeezed into a 14-bit bitmap, leaving bit 0 free for the Ace playing low.
const nibbleWidth = 4

// rankIndex maps a rank symbol to 1+its position; 0 marks an unknown symbol.
var rankIndex = func() [256]uint8 {
	var table [256]uint8
	for i, r := range Ranks {
		table[r] = uint8(i + 1)
	}
	return table
}()

// rankWeights maps a rank symbol to 16^(1+index). Unknown symbols weigh 0.
var rankWeights = func() [256]uint64 {
	var table [256]uint64
	for i, r := range Ranks {
		table[r] = 1 << (nibbleWidth * (i + 1))
	}
	return table
}()

// Weight returns the count-word weight of r: 16^1 for '2' up to 16^13 for 'A'.
// Summing the weights of up to five cards never carries between ranks.
func Weight(r Rank) uint64 {
	return rankWeights[r]
}

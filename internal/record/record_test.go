package record

import (
	rand "math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handvalue/poker"
)

// first game of the Project Euler poker.txt, CRLF terminated
const sampleRecord = "8C TS KC 9H 4S 7D 2S 5D 3S AC\r\n"

func TestSizeMatchesSample(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 31, Size)
	assert.Len(t, sampleRecord, Size)
}

func TestDecode(t *testing.T) {
	t.Parallel()
	g, err := Decode([]byte(sampleRecord))
	require.NoError(t, err)
	assert.Equal(t, "8C TS KC 9H 4S", g.Hands[0].String())
	assert.Equal(t, "7D 2S 5D 3S AC", g.Hands[1].String())
	assert.Equal(t, -1, g.Winner(), "ace high beats king high")
}

func TestDecodeIgnoresPadBytes(t *testing.T) {
	t.Parallel()
	b := []byte(sampleRecord)
	for off := cardSize - 1; off < Size; off += cardSize {
		b[off] = 0xff
	}
	b[Size-1] = 0
	g, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, "8C TS KC 9H 4S | 7D 2S 5D 3S AC", g.String())
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"short", sampleRecord[:Size-1], ErrShortRecord},
		{"empty", "", ErrShortRecord},
		{"bad rank", "1C TS KC 9H 4S 7D 2S 5D 3S AC\r\n", poker.ErrInvalidCard},
		{"bad suit", "8X TS KC 9H 4S 7D 2S 5D 3S AC\r\n", poker.ErrInvalidCard},
		{"lower case", "8c TS KC 9H 4S 7D 2S 5D 3S AC\r\n", poker.ErrInvalidCard},
		{"duplicate in hand", "8C 8C KC 9H 4S 7D 2S 5D 3S AC\r\n", poker.ErrDuplicateCard},
		{"shared card", "8C TS KC 9H 4S 8C 2S 5D 3S AC\r\n", ErrSharedCard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.input))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAppendGameRoundTrip(t *testing.T) {
	t.Parallel()
	g, err := Decode([]byte(sampleRecord))
	require.NoError(t, err)
	assert.Equal(t, sampleRecord, string(AppendGame(nil, g)))

	deck := poker.NewDeck(rand.New(rand.NewPCG(9, 9)))
	var buf []byte
	for range 500 {
		want := Deal(deck)
		buf = AppendGame(buf[:0], want)
		require.Len(t, buf, Size)
		got, err := Decode(buf)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestDeal(t *testing.T) {
	t.Parallel()
	deck := poker.NewDeck(rand.New(rand.NewPCG(5, 5)))
	for range 100 {
		g := Deal(deck)
		require.NoError(t, g.Validate())
		for _, h := range g.Hands {
			_, err := poker.NewHand(h[:]...)
			require.NoError(t, err)
		}
	}
}

func TestGames(t *testing.T) {
	t.Parallel()
	g, err := ParseLine(sampleRecord)
	require.NoError(t, err)
	games := Games{g, g}
	assert.Equal(t, 2, games.Len())

	got, err := games.Game(1)
	require.NoError(t, err)
	assert.Equal(t, g, got)

	_, err = games.Game(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = games.Game(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func BenchmarkDecode(b *testing.B) {
	rec := []byte(sampleRecord)
	for i := 0; i < b.N; i++ {
		_, _ = Decode(rec)
	}
}

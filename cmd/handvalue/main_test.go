package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handvalue/internal/config"
	"github.com/lox/handvalue/internal/record"
)

const sampleGames = "5H 5C 6S 7S KD 2C 3S 8S 8D TD\r\n" +
	"5D 8C 9S JS AC 2C 5C 7D 8S QH\r\n" +
	"2D 9C AS AH AC 3D 6D 7D TD QD\r\n" +
	"4D 6S 9H QH QC 3D 6D 7H QD QS\r\n" +
	"2H 2D 4C 4D 4S 3C 3D 3S 9S 9D\r\n"

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testConfig(path, format string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Input.Path = path
	cfg.Input.Format = format
	cfg.Tally.Workers = 2
	return cfg
}

func TestCountSampleGames(t *testing.T) {
	path := writeFile(t, "poker.txt", sampleGames)

	for _, format := range []string{config.FormatBinary, config.FormatText} {
		t.Run(format, func(t *testing.T) {
			var out bytes.Buffer
			err := count(context.Background(), testConfig(path, format), log.New(io.Discard), &out)
			require.NoError(t, err)
			assert.Equal(t, "Player 1 wins: 3\nPlayer 2 wins: 2\nTies: 0\n", out.String())
		})
	}
}

func TestCountGeneratedFile(t *testing.T) {
	var buf bytes.Buffer
	n, err := generate(&buf, 3000, 99)
	require.NoError(t, err)
	require.Equal(t, 3000, n)
	path := writeFile(t, "games.txt", buf.String())

	games, err := record.ReadAll(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	var one, two, ties int
	for _, g := range games {
		switch g.Winner() {
		case 1:
			one++
		case -1:
			two++
		default:
			ties++
		}
	}

	var out bytes.Buffer
	require.NoError(t, count(context.Background(), testConfig(path, config.FormatBinary), log.New(io.Discard), &out))
	assert.Equal(t, fmt.Sprintf("Player 1 wins: %d\nPlayer 2 wins: %d\nTies: %d\n", one, two, ties), out.String())
}

func TestCountTextAcceptsLF(t *testing.T) {
	path := writeFile(t, "lf.txt", "5H 5C 6S 7S KD 2C 3S 8S 8D TD\n5D 8C 9S JS AC 2C 5C 7D 8S QH\n")

	var out bytes.Buffer
	require.NoError(t, count(context.Background(), testConfig(path, config.FormatText), log.New(io.Discard), &out))
	assert.Contains(t, out.String(), "Player 1 wins: 1\n")
}

func TestCountTrailingPartialRecord(t *testing.T) {
	path := writeFile(t, "poker.txt", sampleGames+"AS KD")

	var logs, out bytes.Buffer
	require.NoError(t, count(context.Background(), testConfig(path, config.FormatBinary), log.New(&logs), &out))
	assert.Contains(t, out.String(), "Player 1 wins: 3\n")
	assert.Contains(t, logs.String(), "partial record")
}

func TestCountErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := testConfig(filepath.Join(t.TempDir(), "nope.txt"), config.FormatBinary)
		err := count(context.Background(), cfg, log.New(io.Discard), io.Discard)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("corrupt record", func(t *testing.T) {
		path := writeFile(t, "bad.txt", "5H 5H 6S 7S KD 2C 3S 8S 8D TD\r\n")
		err := count(context.Background(), testConfig(path, config.FormatBinary), log.New(io.Discard), io.Discard)
		assert.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		path := writeFile(t, "poker.txt", sampleGames)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := count(ctx, testConfig(path, config.FormatBinary), log.New(io.Discard), io.Discard)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCountCmdOverridesConfig(t *testing.T) {
	cfgPath := writeFile(t, "handvalue.hcl", `
input {
  path   = "from-config.txt"
  format = "text"
}

tally {
  workers = 2
}
`)
	cmd := &CountCmd{Config: cfgPath, File: "from-flag.txt", Workers: 5, JSON: true}
	cfg, err := config.LoadConfig(cmd.Config)
	require.NoError(t, err)
	cmd.override(cfg)

	assert.Equal(t, "from-flag.txt", cfg.Input.Path)
	assert.Equal(t, config.FormatText, cfg.Input.Format)
	assert.Equal(t, 5, cfg.Tally.Workers)
	assert.Equal(t, config.LogJSON, cfg.Log.Format)
}

func TestCountCmdRejectsBadFormat(t *testing.T) {
	cmd := &CountCmd{
		Config: filepath.Join(t.TempDir(), "none.hcl"),
		File:   writeFile(t, "poker.txt", sampleGames),
		Format: "csv",
	}
	err := cmd.Run(io.Discard)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestEvalOneHand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&EvalCmd{Cards: []string{"AS KS QS JS TS"}}).Run(&out))
	assert.Contains(t, out.String(), "AS KS QS JS TS")
	assert.Contains(t, out.String(), "Straight Flush")
	assert.Contains(t, out.String(), "0x")
	assert.NotContains(t, out.String(), "wins")
}

func TestEvalTwoHands(t *testing.T) {
	tests := []struct {
		name  string
		cards []string
		want  string
	}{
		{"player one", []string{"2H 2D 4C 4D 4S", "3C 3D 3S 9S 9D"}, "Player 1 wins"},
		{"player two", []string{"5H", "5C", "6S", "7S", "KD", "2C", "3S", "8S", "8D", "TD"}, "Player 2 wins"},
		{"tie", []string{"2C 3D 4H 5S 7C 2D 3H 4S 5C 7D"}, "Tie"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, (&EvalCmd{Cards: tc.cards}).Run(&out))
			assert.Contains(t, out.String(), tc.want)
			assert.Contains(t, out.String(), "Player 2:")
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name  string
		cards []string
	}{
		{"too few", []string{"AS KS QS JS"}},
		{"between hands", []string{"AS KS QS JS TS 2C"}},
		{"bad card", []string{"AS KS QS JS 1S"}},
		{"duplicate", []string{"AS AS QS JS TS"}},
		{"shared", []string{"AS KS QS JS TS", "AS 2C 3C 4C 5C"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, (&EvalCmd{Cards: tc.cards}).Run(io.Discard))
		})
	}
}

func TestGenIsReproducible(t *testing.T) {
	dir := t.TempDir()
	seed := int64(1234)
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")

	var out bytes.Buffer
	require.NoError(t, (&GenCmd{File: a, Games: 50, Seed: &seed}).Run(&out))
	require.NoError(t, (&GenCmd{File: b, Games: 50, Seed: &seed}).Run(io.Discard))
	assert.Contains(t, out.String(), "Wrote 50 games")
	assert.Contains(t, out.String(), "seed 1234")

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Len(t, da, 50*record.Size)
	assert.Equal(t, da, db)

	f, err := record.Open(a)
	require.NoError(t, err)
	defer f.Close()
	for i := 0; i < f.Len(); i++ {
		_, err := f.Game(i)
		require.NoError(t, err)
	}
}

func TestGenRejectsNegativeCount(t *testing.T) {
	err := (&GenCmd{File: filepath.Join(t.TempDir(), "x.txt"), Games: -1}).Run(io.Discard)
	assert.Error(t, err)
}

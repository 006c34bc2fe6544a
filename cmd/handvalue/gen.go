package main

import (
	"fmt"
	"io"

	"github.com/lox/handvalue/internal/fileutil"
	"github.com/lox/handvalue/internal/randutil"
	"github.com/lox/handvalue/internal/record"
	"github.com/lox/handvalue/poker"
)

// GenCmd writes random games in record format.
type GenCmd struct {
	File  string `arg:"" help:"Output file"`
	Games int    `short:"n" default:"1000" help:"Number of games to write"`
	Seed  *int64 `help:"Random seed for reproducible output"`
}

func (g *GenCmd) Run(out io.Writer) error {
	if g.Games < 0 {
		return fmt.Errorf("games must not be negative, got %d", g.Games)
	}
	seed := randutil.Seed(g.Seed)

	f, err := fileutil.CreateAtomic(g.File, 0o644)
	if err != nil {
		return err
	}
	defer f.Abort()

	n, err := generate(f, g.Games, seed)
	if err != nil {
		return fmt.Errorf("%s: %w", g.File, err)
	}
	if err := f.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %d games to %s (seed %d)\n", n, g.File, seed)
	return nil
}

// generate writes n random games to w and returns how many were written.
func generate(w io.Writer, n int, seed int64) (int, error) {
	deck := poker.NewDeck(randutil.New(seed))
	rw := record.NewWriter(w)
	for i := 0; i < n; i++ {
		if err := rw.Write(record.Deal(deck)); err != nil {
			return rw.Count(), err
		}
	}
	return rw.Count(), rw.Flush()
}

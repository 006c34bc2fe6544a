package tally

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handvalue/internal/record"
	"github.com/lox/handvalue/poker"
)

// checkEvery is how many games a worker plays between cancellation checks.
const checkEvery = 4096

// Source is a random-access list of games. Game must be safe for
// concurrent use.
type Source interface {
	Len() int
	Game(i int) (record.Game, error)
}

// Result holds the totals of a run.
type Result struct {
	Games     int
	PlayerOne int
	PlayerTwo int
	Ties      int
	// HandTypes counts evaluated hands of both players by category.
	HandTypes [len(poker.HandTypes)]int
	Elapsed   time.Duration
}

func (r *Result) add(o Result) {
	r.Games += o.Games
	r.PlayerOne += o.PlayerOne
	r.PlayerTwo += o.PlayerTwo
	r.Ties += o.Ties
	for i, n := range o.HandTypes {
		r.HandTypes[i] += n
	}
}

// Counter plays every game of a Source and counts who wins.
type Counter struct {
	workers int
	logger  *log.Logger
	clock   quartz.Clock
	metrics *Metrics
}

// Option configures a Counter.
type Option func(*Counter)

// WithWorkers sets the number of concurrent workers. Values below one use
// the number of CPUs.
func WithWorkers(n int) Option {
	return func(c *Counter) {
		c.workers = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Counter) {
		c.logger = logger
	}
}

// WithClock sets the clock used to time runs.
func WithClock(clock quartz.Clock) Option {
	return func(c *Counter) {
		c.clock = clock
	}
}

// WithMetrics records run totals on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Counter) {
		c.metrics = m
	}
}

// New creates a Counter.
func New(opts ...Option) *Counter {
	c := &Counter{
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers < 1 {
		c.workers = runtime.NumCPU()
	}
	return c
}

// Count plays every game in src. Games are split into one contiguous chunk
// per worker; the first error cancels the remaining workers.
func (c *Counter) Count(ctx context.Context, src Source) (Result, error) {
	n := src.Len()
	workers := min(c.workers, n)
	logger := c.logger.With("run", uuid.Must(uuid.NewV7()).String())

	start := c.clock.Now()
	logger.Debug("Counting games", "games", n, "workers", workers)

	results := make([]Result, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := w*n/workers, (w+1)*n/workers
		g.Go(func() error {
			r, err := play(ctx, src, lo, hi)
			if err != nil {
				return err
			}
			results[w] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Count failed", "error", err)
		return Result{}, err
	}

	var total Result
	for _, r := range results {
		total.add(r)
	}
	total.Elapsed = c.clock.Since(start)

	if c.metrics != nil {
		c.metrics.observe(total)
	}

	logger.Info("Counted games",
		"games", total.Games,
		"player_one", total.PlayerOne,
		"player_two", total.PlayerTwo,
		"ties", total.Ties,
		"elapsed", total.Elapsed)
	return total, nil
}

// play counts games [lo, hi) of src.
func play(ctx context.Context, src Source, lo, hi int) (Result, error) {
	var r Result
	for i := lo; i < hi; i++ {
		if (i-lo)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return r, err
			}
		}

		game, err := src.Game(i)
		if err != nil {
			return r, fmt.Errorf("game %d: %w", i, err)
		}

		one, two := game.Values()
		r.HandTypes[one.Type()]++
		r.HandTypes[two.Type()]++
		r.Games++
		switch poker.Compare(one, two) {
		case 1:
			r.PlayerOne++
		case -1:
			r.PlayerTwo++
		default:
			r.Ties++
		}
	}
	return r, nil
}

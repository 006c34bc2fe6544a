package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lox/handvalue/cmd/handvalue/shared"
	"github.com/lox/handvalue/internal/config"
	"github.com/lox/handvalue/internal/record"
	"github.com/lox/handvalue/internal/tally"
	"github.com/lox/handvalue/poker"
)

// CountCmd plays every game in a file. Flags override the config file.
type CountCmd struct {
	File        string `arg:"" optional:"" help:"Games file (default from config, then poker.txt)"`
	Format      string `help:"Input format: binary or text"`
	Workers     int    `short:"w" help:"Number of workers (0 uses config, then one per CPU)"`
	Config      string `short:"c" default:"handvalue.hcl" help:"HCL config file"`
	MetricsAddr string `name:"metrics-addr" help:"Serve Prometheus metrics on this address"`
	Debug       bool   `help:"Enable debug logging"`
	JSON        bool   `name:"json" help:"Log as JSON"`
}

func (c *CountCmd) Run(out io.Writer) error {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	c.override(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg, c.Debug)
	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	return count(ctx, cfg, logger, out)
}

func (c *CountCmd) override(cfg *config.Config) {
	if c.File != "" {
		cfg.Input.Path = c.File
	}
	if c.Format != "" {
		cfg.Input.Format = c.Format
	}
	if c.Workers != 0 {
		cfg.Tally.Workers = c.Workers
	}
	if c.MetricsAddr != "" {
		cfg.Metrics.Address = c.MetricsAddr
	}
	if c.JSON {
		cfg.Log.Format = config.LogJSON
	}
}

func newLogger(cfg *config.Config, debug bool) *log.Logger {
	if cfg.Log.Format == config.LogJSON {
		return shared.SetupStructuredLogger(os.Stderr, cfg.LogLevel(), debug)
	}
	return shared.SetupLogger(os.Stderr, cfg.LogLevel(), debug)
}

func count(ctx context.Context, cfg *config.Config, logger *log.Logger, out io.Writer) error {
	opts := []tally.Option{
		tally.WithWorkers(cfg.Tally.Workers),
		tally.WithLogger(logger.WithPrefix("tally")),
	}

	if cfg.Metrics.Address != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		opts = append(opts, tally.WithMetrics(tally.NewMetrics(reg)))

		srv := serveMetrics(cfg.Metrics.Address, reg, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	src, closer, err := openSource(cfg.Input.Path, cfg.Input.Format, logger)
	if err != nil {
		return err
	}
	defer closer()

	result, err := tally.New(opts...).Count(ctx, src)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Player 1 wins: %d\n", result.PlayerOne)
	fmt.Fprintf(out, "Player 2 wins: %d\n", result.PlayerTwo)
	fmt.Fprintf(out, "Ties: %d\n", result.Ties)
	logger.Debug("Hand types", handTypeFields(result)...)
	return nil
}

func handTypeFields(r tally.Result) []any {
	fields := make([]any, 0, 2*len(r.HandTypes))
	for t, n := range r.HandTypes {
		fields = append(fields, tally.HandTypeLabel(poker.HandType(t)), n)
	}
	return fields
}

// openSource opens path in the given format. The returned func releases it.
func openSource(path, format string, logger *log.Logger) (tally.Source, func(), error) {
	if format == config.FormatText {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		games, err := record.ReadAll(f)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		return games, func() {}, nil
	}

	f, err := record.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if n := f.Trailing(); n > 0 {
		logger.Warn("Ignoring partial record at end of file", "path", path, "bytes", n)
	}
	return f, func() { _ = f.Close() }, nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Serving metrics", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", "error", err)
		}
	}()
	return srv
}

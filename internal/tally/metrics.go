package tally

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lox/handvalue/poker"
)

// Outcome labels for the games counter.
const (
	OutcomePlayerOne = "player_one"
	OutcomePlayerTwo = "player_two"
	OutcomeTie       = "tie"
)

// Metrics exports run totals to Prometheus.
type Metrics struct {
	hands    *prometheus.CounterVec
	games    *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "handvalue_hands_total",
			Help: "Hands evaluated, by hand type.",
		}, []string{"type"}),
		games: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "handvalue_games_total",
			Help: "Games played, by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "handvalue_count_duration_seconds",
			Help:    "Time taken to count one source.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	reg.MustRegister(m.hands, m.games, m.duration)
	return m
}

func (m *Metrics) observe(r Result) {
	for t, n := range r.HandTypes {
		m.hands.WithLabelValues(HandTypeLabel(poker.HandType(t))).Add(float64(n))
	}
	m.games.WithLabelValues(OutcomePlayerOne).Add(float64(r.PlayerOne))
	m.games.WithLabelValues(OutcomePlayerTwo).Add(float64(r.PlayerTwo))
	m.games.WithLabelValues(OutcomeTie).Add(float64(r.Ties))
	m.duration.Observe(r.Elapsed.Seconds())
}

// HandTypeLabel returns the metric label for t, e.g. "two_pair".
func HandTypeLabel(t poker.HandType) string {
	return strings.ReplaceAll(strings.ToLower(t.String()), " ", "_")
}

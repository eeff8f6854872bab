package tui

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Metrics are the Prometheus collectors exported by the SSH server.
type Metrics struct {
	registry *prometheus.Registry

	sessions    prometheus.Gauge
	gamesPlayed *prometheus.CounterVec
	finalScore  *prometheus.HistogramVec
	coins       *prometheus.CounterVec
	stomps      *prometheus.CounterVec
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "platformer",
			Name:      "sessions_active",
			Help:      "SSH sessions currently connected.",
		}),
		gamesPlayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platformer",
			Name:      "games_played_total",
			Help:      "Games that reached game over.",
		}, []string{"game"}),
		finalScore: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "platformer",
			Name:      "final_score",
			Help:      "Score at game over.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
		}, []string{"game"}),
		coins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platformer",
			Name:      "coins_collected_total",
			Help:      "Coins and stars collected in finished games.",
		}, []string{"game"}),
		stomps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "platformer",
			Name:      "enemies_stomped_total",
			Help:      "Enemies stomped in finished games.",
		}, []string{"game"}),
	}

	m.registry.MustRegister(m.sessions, m.gamesPlayed, m.finalScore, m.coins, m.stomps)
	return m
}

// SessionStarted counts a connected session.
func (m *Metrics) SessionStarted() { m.sessions.Inc() }

// SessionEnded counts a disconnected session.
func (m *Metrics) SessionEnded() { m.sessions.Dec() }

// ObserveRun records a finished game.
func (m *Metrics) ObserveRun(run storage.Run) {
	m.gamesPlayed.WithLabelValues(run.GameID).Inc()
	m.finalScore.WithLabelValues(run.GameID).Observe(float64(run.Score))
	m.coins.WithLabelValues(run.GameID).Add(float64(run.Coins))
	m.stomps.WithLabelValues(run.GameID).Add(float64(run.Stomps))
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

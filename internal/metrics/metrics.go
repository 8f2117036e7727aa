// Package metrics exposes Prometheus counters for served games.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tetris"

// Recorder holds the game metrics on a private registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	gamesStarted prometheus.Counter
	gamesOver    prometheus.Counter
	linesCleared prometheus.Counter
	sessions     prometheus.Gauge
	finalScore   prometheus.Histogram
}

// New creates a Recorder with all metrics registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Games started, including restarts.",
		}),
		gamesOver: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Games that reached game over.",
		}),
		linesCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_cleared_total",
			Help:      "Rows cleared across all games.",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Connected SSH sessions.",
		}),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at game over.",
			Buckets:   prometheus.ExponentialBuckets(100, 4, 8),
		}),
	}
	r.registry.MustRegister(r.gamesStarted, r.gamesOver, r.linesCleared, r.sessions, r.finalScore)
	return r
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

func (r *Recorder) GameStarted() {
	if r != nil {
		r.gamesStarted.Inc()
	}
}

func (r *Recorder) GameOver(finalScore int) {
	if r == nil {
		return
	}
	r.gamesOver.Inc()
	r.finalScore.Observe(float64(finalScore))
}

// LinesCleared adds n cleared rows. Non-positive n is ignored.
func (r *Recorder) LinesCleared(n int) {
	if r != nil && n > 0 {
		r.linesCleared.Add(float64(n))
	}
}

func (r *Recorder) SessionOpened() {
	if r != nil {
		r.sessions.Inc()
	}
}

func (r *Recorder) SessionClosed() {
	if r != nil {
		r.sessions.Dec()
	}
}

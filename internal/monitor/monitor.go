// Package monitor exposes Prometheus metrics for the SSH server: connected
// sessions, games started and finished per preset, and game durations.
package monitor

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for finished games.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeAbandoned = "abandoned"
)

// Metrics groups the collectors.
type Metrics struct {
	Sessions      prometheus.Gauge
	GamesStarted  *prometheus.CounterVec
	GamesFinished *prometheus.CounterVec
	GameDuration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions",
			Help:      "Number of connected SSH sessions",
		}),
		GamesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Total number of games started",
		}, []string{"preset"}),
		GamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Total number of games finished",
		}, []string{"preset", "outcome"}),
		GameDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "game_duration_seconds",
			Help:      "Play time of finished games",
			Buckets:   prometheus.ExponentialBuckets(5, 2, 9),
		}, []string{"preset"}),
	}

	reg.MustRegister(
		m.Sessions,
		m.GamesStarted,
		m.GamesFinished,
		m.GameDuration,
	)

	return m
}

// Monitor owns a registry and the optional HTTP endpoint. A nil *Monitor is
// valid and records nothing.
type Monitor struct {
	metrics   *Metrics
	registry  *prometheus.Registry
	startTime time.Time
	server    *http.Server
}

// New creates a monitor with its own registry, including Go runtime and
// process collectors.
func New(namespace string) *Monitor {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Monitor{
		metrics:   NewMetrics(namespace, reg),
		registry:  reg,
		startTime: time.Now(),
	}

	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "uptime_seconds",
		Help:      "Seconds since the server started",
	}, func() float64 {
		return time.Since(m.startTime).Seconds()
	}))

	return m
}

// Metrics returns the collectors.
func (m *Monitor) Metrics() *Metrics {
	if m == nil {
		return nil
	}
	return m.metrics
}

// Handler serves the registry in the Prometheus text format.
func (m *Monitor) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartServer listens on addr and serves /metrics in the background.
// Bind errors are returned immediately.
func (m *Monitor) StartServer(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	m.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		_ = m.server.Serve(ln) // Returns http.ErrServerClosed after Shutdown
	}()
	return nil
}

// Shutdown stops the HTTP endpoint if it was started.
func (m *Monitor) Shutdown(ctx context.Context) error {
	if m == nil || m.server == nil {
		return nil
	}
	return m.server.Shutdown(ctx)
}

// SessionStarted counts a new SSH session.
func (m *Monitor) SessionStarted() {
	if m == nil {
		return
	}
	m.metrics.Sessions.Inc()
}

// SessionEnded counts a closed SSH session.
func (m *Monitor) SessionEnded() {
	if m == nil {
		return
	}
	m.metrics.Sessions.Dec()
}

// GameStarted counts a new board for the preset.
func (m *Monitor) GameStarted(preset string) {
	if m == nil {
		return
	}
	m.metrics.GamesStarted.WithLabelValues(preset).Inc()
}

// GameFinished records the outcome and play time of a game.
func (m *Monitor) GameFinished(preset, outcome string, seconds int) {
	if m == nil {
		return
	}
	m.metrics.GamesFinished.WithLabelValues(preset, outcome).Inc()
	m.metrics.GameDuration.WithLabelValues(preset).Observe(float64(seconds))
}

// Package metrics exposes simulation counters and gauges in Prometheus format.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records per-tick simulation metrics on its own registry.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	tickDuration  prometheus.Histogram
	ticksTotal    prometheus.Counter
	obstacles     *prometheus.GaugeVec
	hitsTotal     prometheus.Counter
	gameOvers     prometheus.Counter
	score         prometheus.Gauge
	selections    *prometheus.CounterVec
	inputsDropped prometheus.Gauge
}

// NewCollector creates a Collector with every metric registered.
//
// Returns:
//   - *Collector: the newly created collector
func NewCollector() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "orrery_tick_duration_seconds",
			Help:    "Wall time spent running one simulation tick",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		}),
		ticksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_ticks_total",
			Help: "Total number of simulation ticks",
		}),
		obstacles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "orrery_obstacles",
			Help: "Live obstacles by kind",
		}, []string{"kind"}),
		hitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_hits_total",
			Help: "Obstacle hits taken in game mode",
		}),
		gameOvers: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_game_overs_total",
			Help: "Game runs ended by a hit",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_score",
			Help: "Score of the current game run",
		}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orrery_selections_total",
			Help: "Bodies selected by picking",
		}, []string{"body"}),
		inputsDropped: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_input_events_dropped",
			Help: "Input events discarded because the buffer was full",
		}),
	}

	m.registry.MustRegister(
		m.tickDuration,
		m.ticksTotal,
		m.obstacles,
		m.hitsTotal,
		m.gameOvers,
		m.score,
		m.selections,
		m.inputsDropped,
	)
	return m
}

// RecordTick observes one tick's duration.
func (m *Collector) RecordTick(d time.Duration) {
	if m == nil {
		return
	}
	m.ticksTotal.Inc()
	m.tickDuration.Observe(d.Seconds())
}

// SetObstacles sets the live obstacle gauge for kind.
func (m *Collector) SetObstacles(kind string, n int) {
	if m == nil {
		return
	}
	m.obstacles.WithLabelValues(kind).Set(float64(n))
}

// RecordHit counts an obstacle hit; gameOver also counts the end of a run.
func (m *Collector) RecordHit(gameOver bool) {
	if m == nil {
		return
	}
	m.hitsTotal.Inc()
	if gameOver {
		m.gameOvers.Inc()
	}
}

// SetScore sets the current score gauge.
func (m *Collector) SetScore(v int) {
	if m == nil {
		return
	}
	m.score.Set(float64(v))
}

// RecordSelection counts a body selection.
func (m *Collector) RecordSelection(name string) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(name).Inc()
}

// SetInputsDropped sets the dropped input event gauge.
func (m *Collector) SetInputsDropped(n int) {
	if m == nil {
		return
	}
	m.inputsDropped.Set(float64(n))
}

// Registry returns the registry the metrics are registered on.
func (m *Collector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler serving the metrics in the Prometheus text format.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
//
// Parameters:
//   - ctx: cancelling it shuts the server down
//   - addr: listen address, e.g. "127.0.0.1:9464"
//
// Returns:
//   - error: error if the listener fails for any reason other than shutdown
func (m *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown metrics server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve metrics on %s: %w", addr, err)
	}
}

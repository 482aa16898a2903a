// Package metrics exports counting, cache and HTTP events as Prometheus
// metrics.
//
// [Metrics] implements the observability hook interfaces. Register installs
// it as the process-wide hook backend; Handler serves the scrape endpoint.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/necklace/pkg/observability"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	registry *prometheus.Registry

	CountsTotal          *prometheus.CounterVec
	CountDuration        *prometheus.HistogramVec
	ConfigurationsTotal  *prometheus.CounterVec
	OrbitsTotal          *prometheus.CounterVec
	CacheHitsTotal       *prometheus.CounterVec
	CacheMissesTotal     *prometheus.CounterVec
	CacheBytesWritten    *prometheus.CounterVec
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

// New creates the collectors on a private registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		CountsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "necklace_counts_total",
				Help: "Total counting computations by group, output, and status.",
			},
			[]string{"group", "output", "status"},
		),
		CountDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "necklace_count_duration_seconds",
				Help:    "Counting computation latency in seconds.",
				Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
			},
			[]string{"group"},
		),
		ConfigurationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "necklace_configurations_total",
				Help: "Total arrangements enumerated by group.",
			},
			[]string{"group"},
		),
		OrbitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "necklace_orbits_total",
				Help: "Total orbits found by group.",
			},
			[]string{"group"},
		),
		CacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "necklace_cache_hits_total",
				Help: "Total number of cache hits by key type.",
			},
			[]string{"key_type"},
		),
		CacheMissesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "necklace_cache_misses_total",
				Help: "Total number of cache misses by key type.",
			},
			[]string{"key_type"},
		),
		CacheBytesWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "necklace_cache_written_bytes_total",
				Help: "Total bytes written to the cache by key type.",
			},
			[]string{"key_type"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route, and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.CountsTotal,
		m.CountDuration,
		m.ConfigurationsTotal,
		m.OrbitsTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.CacheBytesWritten,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
	)

	return m
}

// Register installs m as the process-wide observability backend.
func (m *Metrics) Register() {
	observability.SetCountHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus scrape HTTP handler for m's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// OnCountStart implements observability.CountHooks.
func (m *Metrics) OnCountStart(context.Context, string, int) {}

// OnCountComplete implements observability.CountHooks.
func (m *Metrics) OnCountComplete(_ context.Context, group, output string, configs, orbits int, d time.Duration, err error) {
	m.CountsTotal.WithLabelValues(group, output, status(err)).Inc()
	m.CountDuration.WithLabelValues(group).Observe(d.Seconds())
	if err == nil {
		m.ConfigurationsTotal.WithLabelValues(group).Add(float64(configs))
		m.OrbitsTotal.WithLabelValues(group).Add(float64(orbits))
	}
}

// OnCacheHit implements observability.CacheHooks.
func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.CacheHitsTotal.WithLabelValues(keyType).Inc()
}

// OnCacheMiss implements observability.CacheHooks.
func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.CacheMissesTotal.WithLabelValues(keyType).Inc()
}

// OnCacheSet implements observability.CacheHooks.
func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.CacheBytesWritten.WithLabelValues(keyType).Add(float64(size))
}

// OnRequest implements observability.HTTPHooks.
func (m *Metrics) OnRequest(context.Context, string, string) {
	m.HTTPRequestsInFlight.Inc()
}

// OnResponse implements observability.HTTPHooks.
func (m *Metrics) OnResponse(_ context.Context, method, route string, statusCode int, d time.Duration) {
	m.HTTPRequestsInFlight.Dec()
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "error"
}

var (
	_ observability.CountHooks = (*Metrics)(nil)
	_ observability.CacheHooks = (*Metrics)(nil)
	_ observability.HTTPHooks  = (*Metrics)(nil)
)

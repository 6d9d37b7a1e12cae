package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Airfield.
// Metrics live on their own registry so tests can build routers
// without colliding on the global collector set.
type MetricsRegistry struct {
	Registry *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Store Metrics
	StoreMutationsTotal  prometheus.CounterVec
	StoreRecords         prometheus.Gauge
	PersistWritesTotal   prometheus.Counter
	PersistFailuresTotal prometheus.Counter

	// Auth Metrics
	LoginAttemptsTotal prometheus.CounterVec
	SessionsCreated    prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &MetricsRegistry{
		Registry: reg,

		HTTPRequestsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airfield_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "airfield_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "airfield_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		StoreMutationsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airfield_store_mutations_total",
				Help: "Total airport collection mutations by operation",
			},
			[]string{"operation"},
		),
		StoreRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "airfield_store_records",
				Help: "Current number of airport records in memory",
			},
		),
		PersistWritesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "airfield_persist_writes_total",
				Help: "Successful re-serializations of the airports file",
			},
		),
		PersistFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "airfield_persist_failures_total",
				Help: "Failed re-serializations of the airports file",
			},
		),

		LoginAttemptsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airfield_login_attempts_total",
				Help: "Login attempts by result",
			},
			[]string{"result"},
		),
		SessionsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "airfield_sessions_created_total",
				Help: "Sessions established after successful logins",
			},
		),
	}
}

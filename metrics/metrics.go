// Package metrics implements a Prometheus-backed observability.Observer.
//
// Each Metrics instance owns an isolated registry so multiple drivers in one
// process never collide on metric names. Attach it to a connection with
// driver.WithObserver and expose Handler() on a scrape endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dyndb/oracle/observability"
)

// Config controls metrics construction.
type Config struct {
	// ServiceName is attached to every metric as a constant "service" label.
	ServiceName string

	// Buckets are the histogram buckets for operation durations. Nil means
	// prometheus.DefBuckets.
	Buckets []float64
}

// Metrics records driver operations into Prometheus collectors.
type Metrics struct {
	// Registry is the isolated Prometheus registry holding all collectors.
	Registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

var _ observability.Observer = (*Metrics)(nil)

// New builds a Metrics instance with its own registry.
func New(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registerer := prometheus.Registerer(registry)
	if cfg.ServiceName != "" {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"service": cfg.ServiceName},
			registry,
		)
	}
	buckets := cfg.Buckets
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}

	m := &Metrics{
		Registry: registry,
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "operations_total",
				Help: "Total number of driver operations by outcome",
			},
			[]string{"component", "operation", "status"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "operation_duration_seconds",
				Help:    "Duration of driver operations in seconds",
				Buckets: buckets,
			},
			[]string{"component", "operation"},
		),
	}
	registerer.MustRegister(m.operationsTotal, m.operationDuration)
	return m
}

// ObserveOperation records one completed operation.
func (m *Metrics) ObserveOperation(ctx observability.OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}
	m.operationsTotal.WithLabelValues(ctx.Component, ctx.Operation, status).Inc()
	m.operationDuration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
}

// Handler serves the registry for Prometheus scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

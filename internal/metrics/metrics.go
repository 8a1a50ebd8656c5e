// Package metrics exposes Prometheus instrumentation for calculations and RPCs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Calculation kinds used as the "kind" label.
const (
	KindSettle   = "settle"
	KindAllocate = "allocate"
	KindEven     = "split_evenly"
	KindMultiply = "multiply"
)

// Metrics holds the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	transfers    prometheus.Histogram
	rpcDuration  *prometheus.HistogramVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "godutch",
			Name:      "calculations_total",
			Help:      "Calculations performed, by kind.",
		}, []string{"kind"}),
		transfers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "godutch",
			Name:      "settle_transfers",
			Help:      "Number of transfers produced per settlement.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "godutch",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure and result code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}
	m.registry.MustRegister(m.calculations, m.transfers, m.rpcDuration)
	return m
}

// Calculation counts one calculation of the given kind.
func (m *Metrics) Calculation(kind string) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(kind).Inc()
}

// Settlement records a settlement and how many transfers it produced.
func (m *Metrics) Settlement(transfers int) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(KindSettle).Inc()
	m.transfers.Observe(float64(transfers))
}

// RPC records one completed RPC.
func (m *Metrics) RPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Calculations returns the counter for kind, for tests.
func (m *Metrics) Calculations(kind string) prometheus.Counter {
	return m.calculations.WithLabelValues(kind)
}

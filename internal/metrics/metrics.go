// Package metrics exposes Prometheus metrics for universities synchronization
// and the persistent store.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes.
const (
	OutcomeNetwork  = "network"  // fresh records from the API
	OutcomeFallback = "fallback" // API failed, cached records served
	OutcomeError    = "error"    // nothing to serve
)

type Metrics struct {
	FetchesTotal          *prometheus.CounterVec   // by operation (fetch, refresh) and outcome
	RequestErrorsTotal    *prometheus.CounterVec   // by origin (network, parsing)
	StoreOperationSeconds *prometheus.HistogramVec // by collection, op and result
	CachedRecords         prometheus.Gauge         // records in the store after the last sync
}

// New registers every metric with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		FetchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "go_unis_fetches_total",
			Help: "Universities fetches by operation and outcome",
		}, []string{"operation", "outcome"}),

		RequestErrorsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "go_unis_request_errors_total",
			Help: "Failed universities API requests by error origin",
		}, []string{"origin"}),

		StoreOperationSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "go_unis_store_operation_duration_seconds",
			Help:    "Duration of persistent store operations",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"collection", "op", "result"}),

		CachedRecords: f.NewGauge(prometheus.GaugeOpts{
			Name: "go_unis_cached_records",
			Help: "Universities held in the persistent store after the last sync",
		}),
	}
}

func (m *Metrics) RecordFetch(operation, outcome string) {
	m.FetchesTotal.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) RecordRequestError(origin string) {
	m.RequestErrorsTotal.WithLabelValues(origin).Inc()
}

func (m *Metrics) SetCachedRecords(n int) {
	m.CachedRecords.Set(float64(n))
}

// ObserveStoreOperation implements store.Observer.
func (m *Metrics) ObserveStoreOperation(collection, op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StoreOperationSeconds.WithLabelValues(collection, op, result).Observe(time.Since(start).Seconds())
}

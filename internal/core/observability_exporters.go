package core

import (
	"context"
	"expvar"
	"fmt"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"toyinventory/pkg/domain"
)

var expvarSeq uint64

// ExpvarMetricsRecorder publishes per-operation timings, outcome counters and
// sales through expvar.
type ExpvarMetricsRecorder struct {
	name      string
	mu        sync.Mutex
	durations map[string]float64
	results   map[string]map[string]int64
	sales     map[domain.Kind]int64
}

// ExpvarMetricsSnapshot is a read-only copy of the recorded metrics.
type ExpvarMetricsSnapshot struct {
	DurationsMS map[string]float64          `json:"durations_ms_total"`
	Results     map[string]map[string]int64 `json:"results_total"`
	Sales       map[domain.Kind]int64       `json:"sales_total"`
	RecordedAt  time.Time                   `json:"recorded_at"`
}

// NewExpvarMetricsRecorder publishes a recorder under name. An empty name
// gets a generated unique one, since expvar names cannot be reused.
func NewExpvarMetricsRecorder(name string) *ExpvarMetricsRecorder {
	if name == "" {
		id := atomic.AddUint64(&expvarSeq, 1)
		name = fmt.Sprintf("toyinventory_metrics_%d", id)
	}
	rec := &ExpvarMetricsRecorder{
		name:      name,
		durations: make(map[string]float64),
		results:   make(map[string]map[string]int64),
		sales:     make(map[domain.Kind]int64),
	}
	expvar.Publish(name, expvar.Func(func() any {
		return rec.Snapshot()
	}))
	return rec
}

// Name returns the expvar export name.
func (r *ExpvarMetricsRecorder) Name() string {
	return r.name
}

// Snapshot returns a copy of the aggregated metrics.
func (r *ExpvarMetricsRecorder) Snapshot() ExpvarMetricsSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make(map[string]map[string]int64, len(r.results))
	for op, counts := range r.results {
		results[op] = maps.Clone(counts)
	}
	return ExpvarMetricsSnapshot{
		DurationsMS: maps.Clone(r.durations),
		Results:     results,
		Sales:       maps.Clone(r.sales),
		RecordedAt:  time.Now().UTC(),
	}
}

// Observe records an operation outcome.
func (r *ExpvarMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	ms := float64(duration) / float64(time.Millisecond)

	r.mu.Lock()
	r.durations[operation] += ms
	if _, ok := r.results[operation]; !ok {
		r.results[operation] = make(map[string]int64, 2)
	}
	r.results[operation][status(success)]++
	r.mu.Unlock()
}

// RecordSale counts one unit sold of kind.
func (r *ExpvarMetricsRecorder) RecordSale(kind domain.Kind, _ bool) {
	r.mu.Lock()
	r.sales[kind]++
	r.mu.Unlock()
}

func status(success bool) string {
	if success {
		return "success"
	}
	return "error"
}

// PrometheusMetricsRecorder exports operation counters, latencies and sales
// as Prometheus collectors.
type PrometheusMetricsRecorder struct {
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	sales      *prometheus.CounterVec
}

// NewPrometheusMetricsRecorder registers the inventory collectors with reg.
func NewPrometheusMetricsRecorder(reg prometheus.Registerer) (*PrometheusMetricsRecorder, error) {
	rec := &PrometheusMetricsRecorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toyinventory",
			Name:      "operations_total",
			Help:      "Inventory operations by outcome.",
		}, []string{"operation", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "toyinventory",
			Name:      "operation_duration_seconds",
			Help:      "Inventory operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		sales: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toyinventory",
			Name:      "sales_total",
			Help:      "Units sold by category and whether the sale emptied the stock.",
		}, []string{"category", "outcome"}),
	}
	for _, c := range []prometheus.Collector{rec.operations, rec.durations, rec.sales} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register inventory metrics: %w", err)
		}
	}
	return rec, nil
}

// Observe records an operation outcome.
func (r *PrometheusMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	r.operations.WithLabelValues(operation, status(success)).Inc()
	r.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordSale counts one unit sold of kind.
func (r *PrometheusMetricsRecorder) RecordSale(kind domain.Kind, removed bool) {
	outcome := "in_stock"
	if removed {
		outcome = "sold_out"
	}
	r.sales.WithLabelValues(string(kind), outcome).Inc()
}

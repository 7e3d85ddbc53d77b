// Package metrics records application counters and latencies for Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transaction creation kinds.
const (
	KindSingle      = "single"
	KindInstallment = "installment"
)

// Insight request outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
	OutcomeCacheHit = "cache_hit"
	OutcomeNoData   = "no_data"
)

// Recorder is implemented by every metrics sink.
type Recorder interface {
	TransactionsCreated(kind string, n int)
	InsightRequest(outcome string)
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Prometheus is a Recorder backed by client_golang collectors.
type Prometheus struct {
	transactionsCreated *prometheus.CounterVec
	insightRequests     *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// NewPrometheus registers the collectors on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		transactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "familia_transactions_created_total",
				Help: "Transactions stored, by how they were entered",
			},
			[]string{"kind"},
		),
		insightRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "familia_insight_requests_total",
				Help: "Insight requests by outcome",
			},
			[]string{"outcome"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "familia_http_requests_total",
				Help: "HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "familia_http_request_duration_milliseconds",
				Help:    "HTTP request latency in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"method", "route"},
		),
	}
}

func (p *Prometheus) TransactionsCreated(kind string, n int) {
	p.transactionsCreated.WithLabelValues(kind).Add(float64(n))
}

func (p *Prometheus) InsightRequest(outcome string) {
	p.insightRequests.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(float64(elapsed.Milliseconds()))
}

// Nop discards everything.
type Nop struct{}

func (Nop) TransactionsCreated(string, int)                {}
func (Nop) InsightRequest(string)                          {}
func (Nop) ObserveHTTP(string, string, int, time.Duration) {}

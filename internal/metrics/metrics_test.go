package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

var _ Recorder = (*Prometheus)(nil)
var _ Recorder = Nop{}

func TestPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg)

	m.TransactionsCreated(KindSingle, 1)
	m.TransactionsCreated(KindInstallment, 12)
	m.InsightRequest(OutcomeOK)
	m.InsightRequest(OutcomeOK)
	m.InsightRequest(OutcomeError)
	m.ObserveHTTP("GET", "/api/v1/transactions", 200, 12*time.Millisecond)

	assert.Equal(t, 1.0, promtest.ToFloat64(m.transactionsCreated.WithLabelValues(KindSingle)))
	assert.Equal(t, 12.0, promtest.ToFloat64(m.transactionsCreated.WithLabelValues(KindInstallment)))
	assert.Equal(t, 2.0, promtest.ToFloat64(m.insightRequests.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.insightRequests.WithLabelValues(OutcomeError)))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/transactions", "200")))
	assert.Equal(t, 1, promtest.CollectAndCount(m.httpDuration))
}

func TestNewPrometheus_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheus(prometheus.NewRegistry())
		NewPrometheus(prometheus.NewRegistry())
	})
}

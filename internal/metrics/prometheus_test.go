package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusCounters(t *testing.T) {
	prom := NewPrometheus()
	prom.Metrics.PairFetches.Inc()
	prom.Metrics.PairFetchFailures.Inc()
	prom.Metrics.CandleFetches.Inc()
	prom.Metrics.CandleFetchFailures.Inc()

	assertCounter(t, prom.pairFetches, 1)
	assertCounter(t, prom.pairFailures, 1)
	assertCounter(t, prom.candleFetches, 1)
	assertCounter(t, prom.candleFailures, 1)
}

func assertCounter(t *testing.T, counter prometheus.Counter, expected float64) {
	t.Helper()
	if got := testutil.ToFloat64(counter); got != expected {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

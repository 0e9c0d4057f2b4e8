package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const promNamespace = "binance_loader"

type promCounter struct {
	counter prometheus.Counter
}

func (p promCounter) Inc() {
	p.counter.Inc()
}

type Prometheus struct {
	Metrics *Metrics

	registry       *prometheus.Registry
	pairFetches    prometheus.Counter
	pairFailures   prometheus.Counter
	candleFetches  prometheus.Counter
	candleFailures prometheus.Counter
}

func NewPrometheus() *Prometheus {
	registry := prometheus.NewRegistry()
	pairFetches := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "pair_fetches_total",
		Help:      "Total number of completed pair catalog fetches.",
	})
	pairFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "pair_fetch_failures_total",
		Help:      "Total number of failed pair catalog fetches.",
	})
	candleFetches := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "candle_fetches_total",
		Help:      "Total number of completed historical data fetches.",
	})
	candleFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "candle_fetch_failures_total",
		Help:      "Total number of failed historical data fetches.",
	})

	registry.MustRegister(pairFetches, pairFailures, candleFetches, candleFailures)

	m := &Metrics{
		PairFetches:         promCounter{pairFetches},
		PairFetchFailures:   promCounter{pairFailures},
		CandleFetches:       promCounter{candleFetches},
		CandleFetchFailures: promCounter{candleFailures},
	}

	return &Prometheus{
		Metrics:        m,
		registry:       registry,
		pairFetches:    pairFetches,
		pairFailures:   pairFailures,
		candleFetches:  candleFetches,
		candleFailures: candleFailures,
	}
}

func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

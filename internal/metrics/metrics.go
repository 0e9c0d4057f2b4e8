package metrics

type Counter interface {
	Inc()
}

type Metrics struct {
	PairFetches         Counter
	PairFetchFailures   Counter
	CandleFetches       Counter
	CandleFetchFailures Counter
}

type noopCounter struct{}

func (noopCounter) Inc() {}

func NewNoop() *Metrics {
	n := noopCounter{}
	return &Metrics{
		PairFetches:         n,
		PairFetchFailures:   n,
		CandleFetches:       n,
		CandleFetchFailures: n,
	}
}

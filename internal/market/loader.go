package market

import (
	"context"

	"binance-loader/internal/binance"
	"binance-loader/internal/metrics"
)

// Loader fetches catalog and historical data from the exchange and maps the
// responses into validated records. It is stateless; both operations issue a
// single blocking request with no retries.
type Loader struct {
	client  *binance.Client
	metrics *metrics.Metrics
}

func NewLoader(client *binance.Client, m *metrics.Metrics) *Loader {
	if m == nil {
		m = metrics.NewNoop()
	}
	return &Loader{client: client, metrics: m}
}

// Pairs returns every tradable pair in catalog order. A single malformed
// entry aborts the whole fetch; partial results are never returned.
func (l *Loader) Pairs(ctx context.Context) ([]TradingPair, error) {
	info, err := l.client.ExchangeInfo(ctx)
	if err != nil {
		l.metrics.PairFetchFailures.Inc()
		return nil, err
	}
	pairs := make([]TradingPair, 0, len(info.Symbols))
	for _, s := range info.Symbols {
		pair, err := NewTradingPair(s.Symbol, s.BaseAsset, s.QuoteAsset)
		if err != nil {
			l.metrics.PairFetchFailures.Inc()
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	l.metrics.PairFetches.Inc()
	return pairs, nil
}

// HistoricalData returns the candles for symbol over [startTime, endTime] in
// epoch milliseconds, in response order. The inputs are forwarded to the
// exchange unchecked; a row that cannot be coerced aborts the whole fetch.
func (l *Loader) HistoricalData(ctx context.Context, symbol string, interval binance.Interval, startTime, endTime int64) ([]Candle, error) {
	rows, err := l.client.Klines(ctx, symbol, interval, startTime, endTime)
	if err != nil {
		l.metrics.CandleFetchFailures.Inc()
		return nil, err
	}
	candles := make([]Candle, 0, len(rows))
	for _, row := range rows {
		c, err := CandleFromKline(row)
		if err != nil {
			l.metrics.CandleFetchFailures.Inc()
			return nil, err
		}
		candles = append(candles, c)
	}
	l.metrics.CandleFetches.Inc()
	return candles, nil
}

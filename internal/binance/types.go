package binance

import "fmt"

// ExchangeInfo is the decoded /api/v3/exchangeInfo response. Only the fields
// the loader consumes are mapped; the endpoint returns far more.
type ExchangeInfo struct {
	Timezone   string       `json:"timezone"`
	ServerTime int64        `json:"serverTime"`
	Symbols    []SymbolInfo `json:"symbols"`
}

// SymbolInfo is one catalog entry from the exchange.
type SymbolInfo struct {
	Symbol     string `json:"symbol"`
	Status     string `json:"status"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
}

// Interval is an exchange-defined kline granularity token. Values are passed
// through to the API without local validation.
type Interval string

const (
	OneMinute      Interval = "1m"
	ThreeMinutes   Interval = "3m"
	FiveMinutes    Interval = "5m"
	FifteenMinutes Interval = "15m"
	ThirtyMinutes  Interval = "30m"
	OneHour        Interval = "1h"
	TwoHours       Interval = "2h"
	FourHours      Interval = "4h"
	SixHours       Interval = "6h"
	EightHours     Interval = "8h"
	TwelveHours    Interval = "12h"
	OneDay         Interval = "1d"
	ThreeDays      Interval = "3d"
	OneWeek        Interval = "1w"
	OneMonth       Interval = "1M"
)

// NetworkError reports a transport failure or a non-2xx response from the
// exchange. Status is zero when the request never produced a response.
type NetworkError struct {
	URL    string
	Status int
	Body   string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("binance: %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("binance: %s: http %d: %s", e.URL, e.Status, e.Body)
}

func (e *NetworkError) Unwrap() error { return e.Err }

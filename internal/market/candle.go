package market

import "fmt"

const klineFieldCount = 12

// Candle is one OHLCV-aggregated trading interval decoded from a positional
// kline row. It does not carry the symbol it was fetched for; that
// association stays with the caller.
type Candle struct {
	OpenTime                 int64
	Open                     float64
	High                     float64
	Low                      float64
	Close                    float64
	Volume                   float64
	CloseTime                int64
	QuoteAssetVolume         float64
	NumTrades                int64
	TakerBuyBaseAssetVolume  float64
	TakerBuyQuoteAssetVolume float64
	Ignore                   float64
}

// CandleFromKline maps the twelve positional elements of a kline row onto a
// Candle. The exchange serves prices and volumes as strings and timestamps
// and trade counts as numbers, but each field accepts either representation.
// A missing or non-numeric element fails with a ValidationError. No
// cross-field checks are made; high below low is passed through as-is.
func CandleFromKline(row []any) (Candle, error) {
	if len(row) < klineFieldCount {
		return Candle{}, &ValidationError{
			Field:  "kline",
			Reason: fmt.Sprintf("expected %d fields, got %d", klineFieldCount, len(row)),
		}
	}
	var (
		c   Candle
		err error
	)
	if c.OpenTime, err = intField(row, 0, "open_time"); err != nil {
		return Candle{}, err
	}
	if c.Open, err = floatField(row, 1, "open"); err != nil {
		return Candle{}, err
	}
	if c.High, err = floatField(row, 2, "high"); err != nil {
		return Candle{}, err
	}
	if c.Low, err = floatField(row, 3, "low"); err != nil {
		return Candle{}, err
	}
	if c.Close, err = floatField(row, 4, "close"); err != nil {
		return Candle{}, err
	}
	if c.Volume, err = floatField(row, 5, "volume"); err != nil {
		return Candle{}, err
	}
	if c.CloseTime, err = intField(row, 6, "close_time"); err != nil {
		return Candle{}, err
	}
	if c.QuoteAssetVolume, err = floatField(row, 7, "quote_asset_volume"); err != nil {
		return Candle{}, err
	}
	if c.NumTrades, err = intField(row, 8, "num_trades"); err != nil {
		return Candle{}, err
	}
	if c.TakerBuyBaseAssetVolume, err = floatField(row, 9, "taker_buy_base_asset_volume"); err != nil {
		return Candle{}, err
	}
	if c.TakerBuyQuoteAssetVolume, err = floatField(row, 10, "taker_buy_quote_asset_volume"); err != nil {
		return Candle{}, err
	}
	if c.Ignore, err = floatField(row, 11, "ignore"); err != nil {
		return Candle{}, err
	}
	return c, nil
}

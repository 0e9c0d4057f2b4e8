package market

import (
	"errors"
	"testing"
)

func klineRow() []any {
	return []any{
		float64(1625097600000),
		"35000.00",
		"35500.00",
		"34900.00",
		"35250.00",
		"10.5",
		float64(1625101199999),
		"370000.00",
		float64(150),
		"5.2",
		"182000.00",
		"0",
	}
}

func TestCandleFromKline(t *testing.T) {
	c, err := CandleFromKline(klineRow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.OpenTime != 1625097600000 {
		t.Fatalf("expected open time 1625097600000, got %d", c.OpenTime)
	}
	if c.Open != 35000.0 {
		t.Fatalf("expected open 35000.0, got %v", c.Open)
	}
	if c.High != 35500.0 {
		t.Fatalf("expected high 35500.0, got %v", c.High)
	}
	if c.Low != 34900.0 {
		t.Fatalf("expected low 34900.0, got %v", c.Low)
	}
	if c.Close != 35250.0 {
		t.Fatalf("expected close 35250.0, got %v", c.Close)
	}
	if c.Volume != 10.5 {
		t.Fatalf("expected volume 10.5, got %v", c.Volume)
	}
	if c.CloseTime != 1625101199999 {
		t.Fatalf("expected close time 1625101199999, got %d", c.CloseTime)
	}
	if c.QuoteAssetVolume != 370000.0 {
		t.Fatalf("expected quote asset volume 370000.0, got %v", c.QuoteAssetVolume)
	}
	if c.NumTrades != 150 {
		t.Fatalf("expected 150 trades, got %d", c.NumTrades)
	}
	if c.TakerBuyBaseAssetVolume != 5.2 {
		t.Fatalf("expected taker buy base volume 5.2, got %v", c.TakerBuyBaseAssetVolume)
	}
	if c.TakerBuyQuoteAssetVolume != 182000.0 {
		t.Fatalf("expected taker buy quote volume 182000.0, got %v", c.TakerBuyQuoteAssetVolume)
	}
	if c.Ignore != 0.0 {
		t.Fatalf("expected ignore 0.0, got %v", c.Ignore)
	}
}

func TestCandleFromKlineShortRow(t *testing.T) {
	_, err := CandleFromKline(klineRow()[:11])
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestCandleFromKlineNonNumericField(t *testing.T) {
	row := klineRow()
	row[1] = "not-a-price"
	_, err := CandleFromKline(row)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if vErr.Field != "open" {
		t.Fatalf("expected failing field open, got %q", vErr.Field)
	}
}

func TestCandleFromKlineNullField(t *testing.T) {
	row := klineRow()
	row[8] = nil
	_, err := CandleFromKline(row)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

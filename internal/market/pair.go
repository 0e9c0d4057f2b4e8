package market

import (
	"fmt"
	"unicode"
)

const (
	symbolLength   = 6
	maxAssetLength = 10
)

// TradingPair is one market instrument from the exchange catalog. Fields are
// unexported so a constructed pair cannot be mutated.
type TradingPair struct {
	symbol     string
	baseAsset  string
	quoteAsset string
}

// NewTradingPair validates the raw catalog fields and constructs a pair.
// The symbol must be exactly six alphanumeric characters; asset codes must be
// non-empty, at most ten characters, and carry no lowercase letters. Any
// failing rule aborts construction with a ValidationError.
func NewTradingPair(symbol, baseAsset, quoteAsset string) (TradingPair, error) {
	if len(symbol) != symbolLength {
		return TradingPair{}, &ValidationError{
			Field:  "symbol",
			Reason: fmt.Sprintf("length must be %d characters, got %d", symbolLength, len(symbol)),
		}
	}
	for _, r := range symbol {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return TradingPair{}, &ValidationError{
				Field:  "symbol",
				Reason: "must contain only alphanumeric characters",
			}
		}
	}
	if err := checkAsset("base_asset", baseAsset); err != nil {
		return TradingPair{}, err
	}
	if err := checkAsset("quote_asset", quoteAsset); err != nil {
		return TradingPair{}, err
	}
	return TradingPair{symbol: symbol, baseAsset: baseAsset, quoteAsset: quoteAsset}, nil
}

// checkAsset enforces the uppercase rule: no lowercase letters anywhere and
// at least one uppercase letter present.
func checkAsset(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "must not be empty"}
	}
	if len(value) > maxAssetLength {
		return &ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("length must be at most %d characters, got %d", maxAssetLength, len(value)),
		}
	}
	hasUpper := false
	for _, r := range value {
		if unicode.IsLower(r) {
			return &ValidationError{Field: field, Reason: "must be uppercase"}
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	if !hasUpper {
		return &ValidationError{Field: field, Reason: "must contain at least one uppercase letter"}
	}
	return nil
}

func (p TradingPair) Symbol() string     { return p.symbol }
func (p TradingPair) BaseAsset() string  { return p.baseAsset }
func (p TradingPair) QuoteAsset() string { return p.quoteAsset }

package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Client talks to the Binance spot REST API. All endpoints used here are
// public and unauthenticated.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ExchangeInfo returns the exchange's instrument catalog.
func (c *Client) ExchangeInfo(ctx context.Context) (ExchangeInfo, error) {
	var info ExchangeInfo
	if err := c.get(ctx, "/api/v3/exchangeInfo", nil, &info); err != nil {
		return ExchangeInfo{}, err
	}
	return info, nil
}

// Klines returns raw candlestick rows for the symbol over [startTime, endTime]
// in epoch milliseconds. Each row is the exchange's positional twelve-element
// array; interpretation of the positions is left to the caller. The symbol,
// interval and window are passed through unchecked and the exchange decides
// how to answer an unknown symbol or an inverted window.
func (c *Client) Klines(ctx context.Context, symbol string, interval Interval, startTime, endTime int64) ([][]any, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("interval", string(interval))
	query.Set("startTime", strconv.FormatInt(startTime, 10))
	query.Set("endTime", strconv.FormatInt(endTime, 10))
	var rows [][]any
	if err := c.get(ctx, "/api/v3/klines", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &NetworkError{URL: u, Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{URL: u, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return &NetworkError{URL: u, Status: resp.StatusCode, Body: string(body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("binance: decode %s: %w", u, err)
	}
	return nil
}

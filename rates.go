package tonapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// TokenRates holds the prices of one token in the requested currencies,
// plus its relative changes over standard windows.
type TokenRates struct {
	Prices  map[string]float64 `json:"prices"`
	Diff24h map[string]string  `json:"diff_24h,omitempty"`
	Diff7d  map[string]string  `json:"diff_7d,omitempty"`
	Diff30d map[string]string  `json:"diff_30d,omitempty"`
}

// Rates maps token identifiers to their rates.
type Rates struct {
	Rates map[string]TokenRates `json:"rates"`
}

// ChartRates is a time series of token prices. Points come as
// [timestamp, price] pairs whose layout the API does not version, so
// they are kept raw.
type ChartRates struct {
	Points json.RawMessage `json:"points"`
}

// GetRates returns the rates of the given tokens (addresses or symbols
// like "ton") in the given currencies (fiat codes or jetton addresses).
func (c *Client) GetRates(ctx context.Context, tokens, currencies []string) (*Rates, error) {
	query := url.Values{
		"tokens":     []string{strings.Join(tokens, ",")},
		"currencies": []string{strings.Join(currencies, ",")},
	}

	var result Rates
	if err := c.getJSON(ctx, "v2/rates", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetChartRates returns the price chart of a token. currency, startDate
// and endDate are optional; zero values are omitted.
func (c *Client) GetChartRates(ctx context.Context, token, currency string, opts ...QueryOption) (*ChartRates, error) {
	cfg := newQueryConfig(0, opts)

	query := url.Values{"token": []string{token}}
	if currency != "" {
		query.Set("currency", currency)
	}
	if cfg.startDate > 0 {
		query.Set("start_date", strconv.FormatInt(cfg.startDate, 10))
	}
	if cfg.endDate > 0 {
		query.Set("end_date", strconv.FormatInt(cfg.endDate, 10))
	}

	var result ChartRates
	if err := c.getJSON(ctx, "v2/rates/chart", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

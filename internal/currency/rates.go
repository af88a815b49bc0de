// Package currency resolves USD to home currency exchange rates.
//
// Rate lookups are best effort: any network or parse failure falls back
// to a fixed table of approximate rates, callers always receive a
// usable positive rate and never an error.
package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	openExchangeRatesURL = "https://openexchangerates.org/api/latest.json"
	exchangeRateAPIURL   = "https://api.exchangerate-api.com/v4/latest/USD"
	requestTimeout       = 10 * time.Second
)

// Approximate rates used when no live rate can be fetched
var fallbackRates = map[string]decimal.Decimal{
	"INR": decimal.NewFromInt(83),
	"EUR": decimal.NewFromFloat(0.92),
	"GBP": decimal.NewFromFloat(0.79),
	"CAD": decimal.NewFromFloat(1.36),
	"AUD": decimal.NewFromFloat(1.52),
	"JPY": decimal.NewFromInt(149),
	"CNY": decimal.NewFromFloat(7.24),
	"SGD": decimal.NewFromFloat(1.34),
	"MXN": decimal.NewFromFloat(17.2),
	"BRL": decimal.NewFromFloat(4.97),
}

// FallbackRate returns the fixed approximate rate for a currency.
// Unknown currencies get a rate of 1.
func FallbackRate(currency string) decimal.Decimal {
	if rate, ok := fallbackRates[strings.ToUpper(strings.TrimSpace(currency))]; ok {
		return rate
	}

	return decimal.NewFromInt(1)
}

// Client fetches live exchange rates with USD as the base currency.
//
// With an Open Exchange Rates API key it queries that API, without one
// it uses the free exchangerate-api.com endpoint.
type Client struct {
	apiKey string
	http   *http.Client

	// Overridable for tests
	OpenExchangeRatesURL string
	ExchangeRateAPIURL   string
}

// NewClient creates a rate client. The API key may be empty.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:               strings.TrimSpace(apiKey),
		http:                 &http.Client{Timeout: requestTimeout},
		OpenExchangeRatesURL: openExchangeRatesURL,
		ExchangeRateAPIURL:   exchangeRateAPIURL,
	}
}

type ratesResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRate returns the USD rate for the currency. It never fails: on
// any error, a non-positive rate, or a currency missing from the
// response it returns the fixed fallback rate instead.
func (c *Client) FetchRate(ctx context.Context, currency string) decimal.Decimal {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" || currency == "USD" {
		return decimal.NewFromInt(1)
	}

	rate, err := c.fetch(ctx, currency)
	if err != nil {
		log.Warn().Err(err).Str("currency", currency).Msg("exchange rate lookup failed, using fallback rate")
		return FallbackRate(currency)
	}

	if !rate.IsPositive() {
		return FallbackRate(currency)
	}

	return rate
}

func (c *Client) fetch(ctx context.Context, currency string) (decimal.Decimal, error) {
	url := c.ExchangeRateAPIURL
	if c.apiKey != "" {
		url = fmt.Sprintf("%s?app_id=%s&symbols=%s", c.OpenExchangeRatesURL, c.apiKey, currency)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("unexpected status %d from rate API", resp.StatusCode)
	}

	var data ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return decimal.Zero, err
	}

	rate, ok := data.Rates[currency]
	if !ok {
		return decimal.Zero, errors.New("currency not in rate API response")
	}

	return rate, nil
}

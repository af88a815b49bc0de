package v1_test

import (
	"net/http"

	v1 "github.com/finance-buddy/backend/internal/controllers/v1"
	"github.com/finance-buddy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetExchangeRate() {
	tests := []struct {
		currency string
		rate     decimal.Decimal
	}{
		{"EUR", decimal.NewFromFloat(0.92)},
		{"inr", decimal.NewFromInt(83)},
		{"USD", decimal.NewFromInt(1)},
		// Not in the stubbed response, falls back to the fixed table
		{"JPY", decimal.NewFromInt(149)},
		// Completely unknown currencies get 1
		{"XXX", decimal.NewFromInt(1)},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/exchange-rates/"+tt.currency, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.ExchangeRateResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Assert().True(response.Data.Rate.Equal(tt.rate), "Rate for %s is %s, expected %s", tt.currency, response.Data.Rate, tt.rate)
	}
}

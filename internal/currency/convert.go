package currency

import "github.com/shopspring/decimal"

// Convert turns a USD amount into the home currency with the given
// rate. Non-positive rates are treated as 1.
func Convert(amountUSD, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return amountUSD
	}

	return amountUSD.Mul(rate)
}

// DisplayAmount selects the amount to show for the preferred display
// currency: the home currency amount when home is set, USD otherwise.
func DisplayAmount(amountUSD, amountHomeCurrency decimal.Decimal, home bool) decimal.Decimal {
	if home {
		return amountHomeCurrency
	}

	return amountUSD
}

package v1

import (
	"net/http"
	"strings"

	"github.com/finance-buddy/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExchangeRate is the USD rate for one currency.
type ExchangeRate struct {
	Currency string          `json:"currency" example:"INR"` // ISO 4217 currency code
	Rate     decimal.Decimal `json:"rate" example:"83.2"`    // Units of the currency per USD
}

type ExchangeRateResponse struct {
	Data ExchangeRate `json:"data"` // The exchange rate
}

func (co Controller) RegisterExchangeRateRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:currency", OptionsExchangeRate)
	r.GET("/:currency", co.GetExchangeRate)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ExchangeRates
// @Success		204
// @Router			/v1/exchange-rates/{currency} [options]
func OptionsExchangeRate(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get exchange rate
// @Description	Returns a best-effort USD rate for the currency. Falls back to a fixed approximate rate when no live rate is available, it never fails.
// @Tags			ExchangeRates
// @Produce		json
// @Success		200			{object}	ExchangeRateResponse
// @Failure		400			{object}	httpError
// @Param			currency	path		string	true	"ISO 4217 currency code"
// @Router			/v1/exchange-rates/{currency} [get]
func (co Controller) GetExchangeRate(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("currency")))
	if code == "" {
		c.JSON(http.StatusBadRequest, httpError{Error: errCurrencyNotSet.Error()})
		return
	}

	rate := co.Rates.FetchRate(c.Request.Context(), code)

	c.JSON(http.StatusOK, ExchangeRateResponse{
		Data: ExchangeRate{
			Currency: code,
			Rate:     rate,
		},
	})
}

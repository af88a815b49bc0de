package v1

import (
	"time"

	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/store"
	"github.com/shopspring/decimal"
)

type IncomeEditable struct {
	AmountUSD    decimal.Decimal  `json:"amountUSD" example:"500" minimum:"0.00000001" multipleOf:"0.00000001"` // Amount in USD
	Source       models.Source    `json:"source" example:"Scholarship"`                                         // Where the money came from
	Note         string           `json:"note" example:"Monthly stipend" default:""`                            // Free-form note
	ExchangeRate *decimal.Decimal `json:"exchangeRate" example:"83"`                                            // USD to home currency rate; fetched live when absent
	Timestamp    time.Time        `json:"timestamp" example:"2023-04-01T09:00:00Z"`                             // Time of the income; defaults to now
}

func (editable IncomeEditable) create(rate decimal.Decimal) store.IncomeCreate {
	return store.IncomeCreate{
		AmountUSD:    editable.AmountUSD,
		Source:       editable.Source,
		Note:         editable.Note,
		ExchangeRate: rate,
		Timestamp:    editable.Timestamp,
	}
}

type IncomeResponse struct {
	Data models.Income `json:"data"` // The income
}

type IncomeListResponse struct {
	Data []models.Income `json:"data"` // List of incomes
}

type IncomeQueryFilter struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2023-04"` // Only incomes of this month
}

package v1

import (
	"time"

	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/store"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	AmountUSD    decimal.Decimal  `json:"amountUSD" example:"12.5" minimum:"0.00000001" multipleOf:"0.00000001"` // Amount in USD
	Category     models.Category  `json:"category" example:"Food"`                                               // Spending category
	Note         string           `json:"note" example:"Groceries for the week" default:""`                      // Free-form note
	ExchangeRate *decimal.Decimal `json:"exchangeRate" example:"83"`                                             // USD to home currency rate; fetched live when absent
	Timestamp    time.Time        `json:"timestamp" example:"2023-04-10T18:30:00Z"`                              // Time of the expense; defaults to now
}

func (editable ExpenseEditable) create(rate decimal.Decimal) store.ExpenseCreate {
	return store.ExpenseCreate{
		AmountUSD:    editable.AmountUSD,
		Category:     editable.Category,
		Note:         editable.Note,
		ExchangeRate: rate,
		Timestamp:    editable.Timestamp,
	}
}

type ExpenseNoteEditable struct {
	Note string `json:"note" example:"Groceries for the week"` // The new note
}

type ExpenseResponse struct {
	Data models.Expense `json:"data"` // The expense
}

type ExpenseListResponse struct {
	Data []models.Expense `json:"data"` // List of expenses
}

type ExpenseQueryFilter struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2023-04"` // Only expenses of this month
}

package v1

import (
	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/store"
	"github.com/shopspring/decimal"
)

type RecurringExpenseEditable struct {
	Name      string           `json:"name" example:"Rent" default:""`                                       // Name of the recurring bill
	AmountUSD decimal.Decimal  `json:"amountUSD" example:"650" minimum:"0.00000001" multipleOf:"0.00000001"` // Amount in USD
	DueDay    int              `json:"dueDay" example:"1" minimum:"1" maximum:"31"`                          // Day of the month the bill is due
	Category  models.Category  `json:"category" example:"Housing"`                                           // Spending category
	Frequency models.Frequency `json:"frequency" example:"monthly" enums:"monthly,spring-semester,fall-semester"`
}

func (editable RecurringExpenseEditable) create() store.RecurringExpenseCreate {
	return store.RecurringExpenseCreate{
		Name:      editable.Name,
		AmountUSD: editable.AmountUSD,
		DueDay:    editable.DueDay,
		Category:  editable.Category,
		Frequency: editable.Frequency,
	}
}

type RecurringExpenseResponse struct {
	Data models.RecurringExpense `json:"data"` // The recurring expense
}

type RecurringExpenseListResponse struct {
	Data []models.RecurringExpense `json:"data"` // List of recurring expenses
}

type RecurringExpenseQueryFilter struct {
	Upcoming bool `form:"upcoming" example:"true"` // Only bills still due this month
}

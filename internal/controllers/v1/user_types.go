package v1

import (
	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/store"
	"github.com/shopspring/decimal"
)

type UserCreate struct {
	HomeCurrency  string          `json:"homeCurrency" example:"INR"`                                       // ISO 4217 code of the home currency
	MonthlyBudget decimal.Decimal `json:"monthlyBudget" example:"1000" minimum:"0" multipleOf:"0.00000001"` // Monthly budget in USD
}

// UserEditable is a partial update of the user profile. Absent fields
// are left unchanged.
type UserEditable struct {
	HomeCurrency             *string                 `json:"homeCurrency" example:"EUR"`
	MonthlyBudget            *decimal.Decimal        `json:"monthlyBudget" example:"1200"`
	OnboardingCompleted      *bool                   `json:"onboardingCompleted" example:"true"`
	PreferredDisplayCurrency *models.DisplayCurrency `json:"preferredDisplayCurrency" example:"HOME" enums:"USD,HOME"`
}

func (editable UserEditable) update() store.UserUpdate {
	return store.UserUpdate{
		HomeCurrency:             editable.HomeCurrency,
		MonthlyBudget:            editable.MonthlyBudget,
		OnboardingCompleted:      editable.OnboardingCompleted,
		PreferredDisplayCurrency: editable.PreferredDisplayCurrency,
	}
}

type UserResponse struct {
	Data models.User `json:"data"` // The user profile
}

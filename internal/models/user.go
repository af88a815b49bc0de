package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DisplayCurrency determines which of the two recorded amounts is
// presented to the user.
type DisplayCurrency string

const (
	DisplayUSD  DisplayCurrency = "USD"
	DisplayHome DisplayCurrency = "HOME"
)

// Toggle returns the other display currency.
func (d DisplayCurrency) Toggle() DisplayCurrency {
	if d == DisplayUSD {
		return DisplayHome
	}

	return DisplayUSD
}

// User is the singleton profile of the installation. It is created once
// during onboarding and only removed by a full data reset.
type User struct {
	DefaultModel
	HomeCurrency             string          // ISO 4217 code of the home currency, e.g. "INR"
	MonthlyBudget            decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Monthly budget in USD
	OnboardingCompleted      bool
	PreferredDisplayCurrency DisplayCurrency
	LastKnownExchangeRate    decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"` // Rate cached from the most recent expense or income
}

// BeforeSave normalizes the currency code and defaults the display
// currency to the home currency.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.HomeCurrency = strings.ToUpper(strings.TrimSpace(u.HomeCurrency))

	if u.PreferredDisplayCurrency == "" {
		u.PreferredDisplayCurrency = DisplayHome
	}

	return nil
}

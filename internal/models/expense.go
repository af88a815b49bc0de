package models

import (
	"strings"
	"time"

	"github.com/finance-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category is the fixed set of expense categories.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryHousing       Category = "Housing"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryEducation     Category = "Education"
	CategoryHealth        Category = "Health"
	CategoryShopping      Category = "Shopping"
	CategoryOther         Category = "Other"
)

// Categories lists all valid expense categories.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryEducation,
		CategoryHealth,
		CategoryShopping,
		CategoryOther,
	}
}

// Expense represents a single spend, recorded in USD together with a
// home currency amount frozen at creation time.
//
// AmountHomeCurrency is AmountUSD multiplied with ExchangeRateUsed at
// the moment the expense was created. It is never recomputed with a
// later rate, so that history stays stable when rates or the home
// currency change.
type Expense struct {
	DefaultModel
	AmountUSD          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AmountHomeCurrency decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ExchangeRateUsed   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ExchangeRateDate   time.Time
	Category           Category
	Note               string
	Timestamp          time.Time   // Instant of the spend
	Month              types.Month // Month of Timestamp, frozen at creation
}

// BeforeSave trims whitespace and freezes the timestamp-derived fields.
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	e.Note = strings.TrimSpace(e.Note)

	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().In(time.UTC)
	} else {
		e.Timestamp = e.Timestamp.In(time.UTC)
	}

	if e.Month.IsZero() {
		e.Month = types.MonthOf(e.Timestamp)
	}

	if e.ExchangeRateDate.IsZero() {
		e.ExchangeRateDate = e.Timestamp
	}

	return
}

// AfterFind enforces UTC timestamps, see DefaultModel.AfterFind.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Timestamp = e.Timestamp.In(time.UTC)
	e.ExchangeRateDate = e.ExchangeRateDate.In(time.UTC)
	return
}

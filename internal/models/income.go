package models

import (
	"strings"
	"time"

	"github.com/finance-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Source is the fixed set of income sources.
type Source string

const (
	SourceJob         Source = "Job"
	SourceFamily      Source = "Family"
	SourceScholarship Source = "Scholarship"
	SourceFreelance   Source = "Freelance"
	SourceOther       Source = "Other"
)

// Sources lists all valid income sources.
func Sources() []Source {
	return []Source{
		SourceJob,
		SourceFamily,
		SourceScholarship,
		SourceFreelance,
		SourceOther,
	}
}

// Income represents money received. It mirrors Expense, with a source
// instead of a category, and freezes the same exchange rate snapshot.
type Income struct {
	DefaultModel
	AmountUSD          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AmountHomeCurrency decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ExchangeRateUsed   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ExchangeRateDate   time.Time
	Source             Source
	Note               string
	Timestamp          time.Time
	Month              types.Month
}

// BeforeSave trims whitespace and freezes the timestamp-derived fields.
func (i *Income) BeforeSave(_ *gorm.DB) (err error) {
	i.Note = strings.TrimSpace(i.Note)

	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now().In(time.UTC)
	} else {
		i.Timestamp = i.Timestamp.In(time.UTC)
	}

	if i.Month.IsZero() {
		i.Month = types.MonthOf(i.Timestamp)
	}

	if i.ExchangeRateDate.IsZero() {
		i.ExchangeRateDate = i.Timestamp
	}

	return
}

// AfterFind enforces UTC timestamps, see DefaultModel.AfterFind.
func (i *Income) AfterFind(tx *gorm.DB) (err error) {
	err = i.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	i.Timestamp = i.Timestamp.In(time.UTC)
	i.ExchangeRateDate = i.ExchangeRateDate.In(time.UTC)
	return
}

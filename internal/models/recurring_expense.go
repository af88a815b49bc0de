package models

import (
	"strings"

	"github.com/finance-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Frequency describes how often a recurring expense is due.
type Frequency string

const (
	FrequencyMonthly        Frequency = "monthly"
	FrequencySpringSemester Frequency = "spring-semester"
	FrequencyFallSemester   Frequency = "fall-semester"
)

// Frequencies lists all valid recurring expense frequencies.
func Frequencies() []Frequency {
	return []Frequency{FrequencyMonthly, FrequencySpringSemester, FrequencyFallSemester}
}

// RecurringExpense is a bill that is due on a fixed day of the month.
// It is never physically removed; deactivating it keeps the option to
// reactivate and preserves the audit trail.
//
// NotifiedMonths is meant to suppress duplicate due-reminders within a
// month. No mutation populates it yet, the reminder feature is not
// wired up.
type RecurringExpense struct {
	DefaultModel
	Name           string
	AmountUSD      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDay         int             // Day of month, 1-31. Months without that day are the caller's concern.
	Category       Category
	Frequency      Frequency
	Active         bool
	NotifiedMonths NotifiedMonths `gorm:"serializer:json"`
}

// NotifiedMonths is the list of months a due-reminder was sent for.
type NotifiedMonths []types.Month

// Contains reports whether the month is in the list.
func (n NotifiedMonths) Contains(month types.Month) bool {
	for _, m := range n {
		if m.Equal(month) {
			return true
		}
	}

	return false
}

// BeforeSave trims the name and defaults the frequency to monthly.
func (r *RecurringExpense) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)

	if r.Frequency == "" {
		r.Frequency = FrequencyMonthly
	}

	return nil
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// AlertType identifies the rule that produced an alert. At most one
// non-dismissed alert exists per type at any time.
type AlertType string

const (
	AlertBudgetThreshold    AlertType = "budget_threshold"
	AlertProjectedOverspend AlertType = "projected_overspend"

	// AlertRecurringDue is declared for due-reminders of recurring
	// expenses. No rule emits it yet, see RecurringExpense.NotifiedMonths.
	AlertRecurringDue AlertType = "recurring_due"
)

// Severity orders alerts from critical to info.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Rank returns the sort rank of the severity, lower is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Alert is a budget warning generated from the current month's
// spending. Alerts are regenerated wholesale on every expense or income
// mutation; dismissed alerts are kept as an audit trail but are
// excluded from active queries.
type Alert struct {
	DefaultModel
	Type           AlertType
	Severity       Severity
	Message        string
	ActionRequired bool
	DismissedAt    *time.Time
}

// Dismissed reports whether the alert has been dismissed.
func (a Alert) Dismissed() bool {
	return a.DismissedAt != nil
}

// AfterFind enforces UTC timestamps, see DefaultModel.AfterFind.
func (a *Alert) AfterFind(tx *gorm.DB) (err error) {
	err = a.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	if a.DismissedAt != nil {
		t := a.DismissedAt.In(time.UTC)
		a.DismissedAt = &t
	}
	return
}

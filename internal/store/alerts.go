package store

import (
	"fmt"
	"time"

	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// generatedAlertTypes are the types the generator owns. Active alerts of
// these types are replaced on every re-evaluation; dismissed ones stay.
var generatedAlertTypes = []models.AlertType{
	models.AlertBudgetThreshold,
	models.AlertProjectedOverspend,
}

// generateAlerts re-evaluates the alert rules against the current month
// and replaces all active generated alerts with the fresh result, so
// there is at most one active alert per type at any time.
func generateAlerts(tx *gorm.DB, now time.Time) error {
	fresh, err := evaluateAlertRules(tx, now)
	if err != nil {
		return err
	}

	err = tx.
		Where("dismissed_at IS NULL AND type IN ?", generatedAlertTypes).
		Delete(&models.Alert{}).Error
	if err != nil {
		return err
	}

	for _, alert := range fresh {
		if err := tx.Create(&alert).Error; err != nil {
			return err
		}
	}

	return nil
}

func evaluateAlertRules(tx *gorm.DB, now time.Time) ([]models.Alert, error) {
	var alerts []models.Alert

	budget, err := monthlyBudget(tx)
	if err != nil {
		return nil, err
	}

	// The threshold rule needs a budget to compare against
	if budget.IsPositive() {
		spent, err := monthSum(tx, &models.Expense{}, "amount_usd", types.MonthOf(now))
		if err != nil {
			return nil, err
		}

		ratio := spent.Div(budget)
		percent := ratio.Mul(decimal.NewFromInt(100))

		switch {
		case ratio.GreaterThanOrEqual(decimal.NewFromFloat(0.9)):
			alerts = append(alerts, models.Alert{
				Type:           models.AlertBudgetThreshold,
				Severity:       models.SeverityCritical,
				Message:        fmt.Sprintf("You're approaching your limit (%s%% spent).", percent.StringFixed(0)),
				ActionRequired: true,
			})
		case ratio.GreaterThanOrEqual(decimal.NewFromFloat(0.75)):
			alerts = append(alerts, models.Alert{
				Type:     models.AlertBudgetThreshold,
				Severity: models.SeverityWarning,
				Message:  fmt.Sprintf("You've spent %s%% of your monthly budget.", percent.StringFixed(0)),
			})
		}
	}

	projection, err := projectedSpend(tx, now)
	if err != nil {
		return nil, err
	}

	if projection.OverspendAmount.IsPositive() {
		alerts = append(alerts, models.Alert{
			Type:           models.AlertProjectedOverspend,
			Severity:       models.SeverityCritical,
			Message:        fmt.Sprintf("At this pace, you may overspend by $%s.", projection.OverspendAmount.StringFixed(2)),
			ActionRequired: true,
		})
	}

	return alerts, nil
}

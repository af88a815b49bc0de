package store

import (
	"errors"
	"time"

	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Total is a monthly net total in both recorded currencies.
type Total struct {
	USD          decimal.Decimal `json:"usd" example:"-423.42"`
	HomeCurrency decimal.Decimal `json:"homeCurrency" example:"-35144.86"`
}

// MonthlyTotal returns income minus expenses for the month, summing the
// frozen per-record amounts. A later exchange rate never changes it.
func (s *Store) MonthlyTotal(month types.Month) (Total, error) {
	expenseUSD, err := monthSum(s.db, &models.Expense{}, "amount_usd", month)
	if err != nil {
		return Total{}, err
	}

	expenseHome, err := monthSum(s.db, &models.Expense{}, "amount_home_currency", month)
	if err != nil {
		return Total{}, err
	}

	incomeUSD, err := monthSum(s.db, &models.Income{}, "amount_usd", month)
	if err != nil {
		return Total{}, err
	}

	incomeHome, err := monthSum(s.db, &models.Income{}, "amount_home_currency", month)
	if err != nil {
		return Total{}, err
	}

	return Total{
		USD:          incomeUSD.Sub(expenseUSD),
		HomeCurrency: incomeHome.Sub(expenseHome),
	}, nil
}

// Projection is the linear extrapolation of this month's spending.
type Projection struct {
	Projected       decimal.Decimal `json:"projected" example:"1200"`        // Spend projected for the full month
	DaysInMonth     int             `json:"daysInMonth" example:"30"`        // Calendar days in the month
	DaysLeft        int             `json:"daysLeft" example:"20"`           // Days remaining after today
	OverspendAmount decimal.Decimal `json:"overspendAmount" example:"200"`   // Projected spend above the budget, 0 if within it
}

// ProjectedSpend extrapolates the month-to-date expenses linearly over
// the whole month. On day 1 it divides by one day, not zero.
func (s *Store) ProjectedSpend(now time.Time) (Projection, error) {
	return projectedSpend(s.db, now)
}

func projectedSpend(db *gorm.DB, now time.Time) (Projection, error) {
	month := types.MonthOf(now)

	spent, err := monthSum(db, &models.Expense{}, "amount_usd", month)
	if err != nil {
		return Projection{}, err
	}

	budget, err := monthlyBudget(db)
	if err != nil {
		return Projection{}, err
	}

	day := now.Day()
	if day < 1 {
		day = 1
	}

	daysInMonth := month.Days()
	spendPerDay := spent.Div(decimal.NewFromInt(int64(day)))
	projected := spendPerDay.Mul(decimal.NewFromInt(int64(daysInMonth)))

	overspend := projected.Sub(budget)
	if overspend.IsNegative() {
		overspend = decimal.Zero
	}

	return Projection{
		Projected:       projected,
		DaysInMonth:     daysInMonth,
		DaysLeft:        daysInMonth - now.Day(),
		OverspendAmount: overspend,
	}, nil
}

// Streak counts the consecutive calendar days up to now that each have
// at least one non-deleted expense. It walks backward one day at a time
// and stops at the first gap, or at 365 days to bound the scan.
func (s *Store) Streak(now time.Time) (int, error) {
	return streak(s.db, now)
}

func streak(db *gorm.DB, now time.Time) (int, error) {
	day := now.In(time.UTC)
	streak := 0

	for streak < 365 {
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

		var count int64
		err := db.Model(&models.Expense{}).
			Where("timestamp >= ? AND timestamp < ?", dayStart, dayStart.AddDate(0, 0, 1)).
			Count(&count).Error
		if err != nil {
			return 0, err
		}

		if count == 0 {
			break
		}

		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak, nil
}

// CategorySpend is one category's share of a month's expenses.
type CategorySpend struct {
	Category   models.Category `json:"category" example:"Food"`
	SpentUSD   decimal.Decimal `json:"spentUSD" example:"240.50"`
	Percentage decimal.Decimal `json:"percentage" example:"34.5"` // Share of the month's total spend
}

// CategorySpending returns the month's expenses grouped by category,
// highest spend first. Percentages sum to 100 when there is any spend;
// without spend the result is empty, there is nothing to divide.
func (s *Store) CategorySpending(month types.Month) ([]CategorySpend, error) {
	var spending []CategorySpend
	err := s.db.Model(&models.Expense{}).
		Select("category, SUM(amount_usd) AS spent_usd").
		Where("month >= date(?) AND month < date(?)", month, month.AddDate(0, 1)).
		Group("category").
		Order("spent_usd DESC").
		Find(&spending).Error
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, c := range spending {
		total = total.Add(c.SpentUSD)
	}

	if !total.IsPositive() {
		return []CategorySpend{}, nil
	}

	hundred := decimal.NewFromInt(100)
	for i := range spending {
		spending[i].Percentage = spending[i].SpentUSD.Div(total).Mul(hundred)
	}

	return spending, nil
}

// MotivationalMessage returns a short nudge based on how much of the
// monthly budget is spent.
func (s *Store) MotivationalMessage(now time.Time) (string, error) {
	spent, err := monthSum(s.db, &models.Expense{}, "amount_usd", types.MonthOf(now))
	if err != nil {
		return "", err
	}

	if spent.IsZero() {
		return "You haven't logged any expenses yet. Start tracking to build the habit!", nil
	}

	budget, err := monthlyBudget(s.db)
	if err != nil {
		return "", err
	}
	if !budget.IsPositive() {
		budget = decimal.NewFromInt(1)
	}

	ratio := spent.Div(budget)
	switch {
	case ratio.GreaterThan(decimal.NewFromFloat(0.95)):
		return "You're close to your limit. Be mindful of your spending!", nil
	case ratio.GreaterThan(decimal.NewFromFloat(0.75)):
		return "You've spent most of your budget. Consider reducing expenses.", nil
	case ratio.GreaterThan(decimal.NewFromFloat(0.5)):
		return "You're at a healthy spending pace. Keep it up!", nil
	}

	return "Great start! You're well under budget.", nil
}

// Achievements returns all achievements, newest first.
func (s *Store) Achievements() ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.db.Order("earned_at DESC").Find(&achievements).Error
	return achievements, err
}

// RecentAchievements returns the latest achievements, at most limit.
func (s *Store) RecentAchievements(limit int) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.db.Order("earned_at DESC").Limit(limit).Find(&achievements).Error
	return achievements, err
}

// monthSum sums one amount column of a model over a month.
// Soft-deleted records are excluded by the model scope.
func monthSum(db *gorm.DB, model any, column string, month types.Month) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := db.Model(model).
		Select("SUM("+column+")").
		Where("month >= date(?) AND month < date(?)", month, month.AddDate(0, 1)).
		Find(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}

	// No matching records sum to NULL
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// monthlyBudget returns the user's monthly budget, zero before onboarding.
func monthlyBudget(db *gorm.DB) (decimal.Decimal, error) {
	var user models.User
	err := db.First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, models.ErrResourceNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	return user.MonthlyBudget, nil
}

package store

import (
	"time"

	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// checkAchievements evaluates the achievement rules after an expense
// mutation and appends any newly earned ones. Existing achievements are
// never modified or removed.
func checkAchievements(tx *gorm.DB, now time.Time) error {
	month := types.MonthOf(now)

	earned, err := firstExpenseEarned(tx)
	if err != nil {
		return err
	}
	if earned {
		if err := awardLifetime(tx, models.AchievementFirstExpense, now); err != nil {
			return err
		}
	}

	days, err := streak(tx, now)
	if err != nil {
		return err
	}
	if days >= 7 {
		if err := awardLifetime(tx, models.AchievementSevenDayStreak, now); err != nil {
			return err
		}
	}

	spent, err := monthSum(tx, &models.Expense{}, "amount_usd", month)
	if err != nil {
		return err
	}

	budget, err := monthlyBudget(tx)
	if err != nil {
		return err
	}

	if spent.IsPositive() && spent.LessThan(budget.Mul(decimal.NewFromFloat(0.9))) {
		if err := awardMonthly(tx, models.AchievementUnderBudget, month, now); err != nil {
			return err
		}
	}

	var count int64
	err = tx.Model(&models.Expense{}).
		Where("month >= date(?) AND month < date(?)", month, month.AddDate(0, 1)).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count >= 10 {
		if err := awardMonthly(tx, models.AchievementConsistentTracker, month, now); err != nil {
			return err
		}
	}

	return nil
}

// firstExpenseEarned reports whether the expense just recorded is the
// first one ever. Deleted expenses count, the habit was still started.
func firstExpenseEarned(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Unscoped().Model(&models.Expense{}).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count == 1, nil
}

// awardLifetime records an achievement that can only ever be earned once.
func awardLifetime(tx *gorm.DB, achievementType models.AchievementType, now time.Time) error {
	var count int64
	err := tx.Model(&models.Achievement{}).
		Where("type = ?", achievementType).
		Count(&count).Error
	if err != nil || count > 0 {
		return err
	}

	achievement := models.NewAchievement(achievementType, now)
	return tx.Create(&achievement).Error
}

// awardMonthly records an achievement earned at most once per month.
func awardMonthly(tx *gorm.DB, achievementType models.AchievementType, month types.Month, now time.Time) error {
	var count int64
	err := tx.Model(&models.Achievement{}).
		Where("type = ? AND month >= date(?) AND month < date(?)", achievementType, month, month.AddDate(0, 1)).
		Count(&count).Error
	if err != nil || count > 0 {
		return err
	}

	achievement := models.NewAchievement(achievementType, now)
	return tx.Create(&achievement).Error
}

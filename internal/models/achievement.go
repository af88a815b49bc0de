package models

import (
	"time"

	"github.com/finance-buddy/backend/internal/types"
)

// AchievementType identifies the rule that unlocked a badge.
type AchievementType string

const (
	AchievementFirstExpense      AchievementType = "first-expense"
	AchievementSevenDayStreak    AchievementType = "7-day-streak"
	AchievementUnderBudget       AchievementType = "under-budget"
	AchievementConsistentTracker AchievementType = "consistent-tracker"

	// AchievementCategoryMaster is declared but no rule evaluates it.
	AchievementCategoryMaster AchievementType = "category-master"
)

// Lifetime reports whether the achievement can be earned at most once
// ever. Non-lifetime achievements can be earned once per month.
func (t AchievementType) Lifetime() bool {
	return t == AchievementFirstExpense || t == AchievementSevenDayStreak
}

// Achievement is an earned badge. The collection is append-only,
// evaluation never removes or modifies existing achievements.
type Achievement struct {
	DefaultModel
	Type        AchievementType
	EarnedAt    time.Time
	Month       types.Month // Month the achievement is scoped to
	Title       string
	Description string
	Icon        string
}

// badge holds the presentation values for an achievement type.
type badge struct {
	Title       string
	Description string
	Icon        string
}

var badges = map[AchievementType]badge{
	AchievementFirstExpense:      {"Welcome to Tracking", "You logged your first expense!", "🎉"},
	AchievementSevenDayStreak:    {"On a Roll", "You've tracked expenses for 7 days straight!", "🔥"},
	AchievementUnderBudget:       {"Budget Master", "You're spending 10% less than your budget!", "💰"},
	AchievementConsistentTracker: {"Detail Oriented", "You've logged 10+ expenses this month!", "📝"},
	AchievementCategoryMaster:    {"Category Master", "You've mastered a spending category!", "🏆"},
}

// NewAchievement returns an achievement of the given type, earned now
// and scoped to the month of now.
func NewAchievement(achievementType AchievementType, now time.Time) Achievement {
	b := badges[achievementType]

	return Achievement{
		Type:        achievementType,
		EarnedAt:    now.In(time.UTC),
		Month:       types.MonthOf(now),
		Title:       b.Title,
		Description: b.Description,
		Icon:        b.Icon,
	}
}

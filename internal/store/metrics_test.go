package store_test

import (
	"time"

	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/store"
	"github.com/finance-buddy/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategorySpending() {
	month := types.MonthOf(time.Now())

	suite.createTestExpense(store.ExpenseCreate{
		AmountUSD: decimal.NewFromInt(300),
		Category:  models.CategoryHousing,
	})
	suite.createTestExpense(store.ExpenseCreate{
		AmountUSD: decimal.NewFromInt(100),
		Category:  models.CategoryFood,
	})

	spending, err := suite.store.CategorySpending(month)
	assert.Nil(suite.T(), err)

	if !assert.Len(suite.T(), spending, 2) {
		return
	}

	assert.Equal(suite.T(), models.CategoryHousing, spending[0].Category, "Categories are not ordered by spend")
	assert.True(suite.T(), decimal.NewFromInt(300).Equal(spending[0].SpentUSD))
	assert.True(suite.T(), decimal.NewFromInt(75).Equal(spending[0].Percentage), "Percentage is wrong: %s", spending[0].Percentage)
	assert.True(suite.T(), decimal.NewFromInt(25).Equal(spending[1].Percentage), "Percentage is wrong: %s", spending[1].Percentage)

	// Percentages sum to 100
	sum := spending[0].Percentage.Add(spending[1].Percentage)
	assert.True(suite.T(), decimal.NewFromInt(100).Equal(sum))
}

func (suite *TestSuiteStandard) TestCategorySpendingEmpty() {
	spending, err := suite.store.CategorySpending(types.MonthOf(time.Now()))
	assert.Nil(suite.T(), err)
	assert.NotNil(suite.T(), spending)
	assert.Empty(suite.T(), spending)
}

func (suite *TestSuiteStandard) TestStreakToday() {
	suite.createTestExpense(store.ExpenseCreate{
		AmountUSD: decimal.NewFromInt(10),
		Category:  models.CategoryFood,
	})

	days, err := suite.store.Streak(time.Now())
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), 1, days)
}

func (suite *TestSuiteStandard) TestStreakEmpty() {
	days, err := suite.store.Streak(time.Now())
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), 0, days)
}

func (suite *TestSuiteStandard) TestMotivationalMessageNoExpenses() {
	suite.initTestUser(1000)

	message, err := suite.store.MotivationalMessage(time.Now())
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "You haven't logged any expenses yet. Start tracking to build the habit!", message)
}

func (suite *TestSuiteStandard) TestMotivationalMessageTiers() {
	suite.initTestUser(1000)

	tests := []struct {
		spend   int64
		message string
	}{
		{100, "Great start! You're well under budget."},
		{500, "You're at a healthy spending pace. Keep it up!"},
		{200, "You've spent most of your budget. Consider reducing expenses."}, // 800 total
		{180, "You're close to your limit. Be mindful of your spending!"},      // 980 total
	}

	for _, tt := range tests {
		suite.createTestExpense(store.ExpenseCreate{
			AmountUSD: decimal.NewFromInt(tt.spend),
			Category:  models.CategoryOther,
		})

		message, err := suite.store.MotivationalMessage(time.Now())
		assert.Nil(suite.T(), err)
		assert.Equal(suite.T(), tt.message, message)
	}
}

func (suite *TestSuiteStandard) TestRecentAchievements() {
	suite.initTestUser(1000)

	// Ten expenses earn first-expense, under-budget and consistent-tracker
	for i := 0; i < 10; i++ {
		suite.createTestExpense(store.ExpenseCreate{
			AmountUSD: decimal.NewFromInt(5),
			Category:  models.CategoryFood,
		})
	}

	all, err := suite.store.Achievements()
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), all, 3)

	recent, err := suite.store.RecentAchievements(2)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), recent, 2)
}

package store_test

import (
	"time"

	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/store"
	"github.com/finance-buddy/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAddExpense() {
	suite.initTestUser(1000)

	expense := suite.createTestExpense(store.ExpenseCreate{
		AmountUSD:    decimal.NewFromFloat(12.5),
		Category:     models.CategoryFood,
		ExchangeRate: decimal.NewFromInt(83),
	})

	assert.True(suite.T(), decimal.NewFromFloat(1037.5).Equal(expense.AmountHomeCurrency), "Home currency amount is wrong: %s", expense.AmountHomeCurrency)
	assert.True(suite.T(), decimal.NewFromInt(83).Equal(expense.ExchangeRateUsed))
	assert.True(suite.T(), types.MonthOf(time.Now()).Equal(expense.Month))

	// The very first expense unlocks an achievement
	achievements, err := suite.store.Achievements()
	assert.Nil(suite.T(), err)
	if assert.Len(suite.T(), achievements, 1) {
		assert.Equal(suite.T(), models.AchievementFirstExpense, achievements[0].Type)
		assert.Equal(suite.T(), "Welcome to Tracking", achievements[0].Title)
	}
}

func (suite *TestSuiteStandard) TestAddExpenseInvalidAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := suite.store.AddExpense(store.ExpenseCreate{
			AmountUSD: amount,
			Category:  models.CategoryFood,
		})
		assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount, "Amount %s must be rejected", amount)
	}
}

func (suite *TestSuiteStandard) TestAddExpenseDefaultRate() {
	expense := suite.createTestExpense(store.ExpenseCreate{
		AmountUSD: decimal.NewFromInt(20),
		Category:  models.CategoryTransport,
	})

	assert.True(suite.T(), decimal.NewFromInt(20).Equal(expense.AmountHomeCurrency), "Without a rate the home amount equals the USD amount")
	assert.True(suite.T(), decimal.NewFromInt(1).Equal(expense.ExchangeRateUsed))
}

func (suite *TestSuiteStandard) TestExpenseAmountsFrozen() {
	suite.initTestUser(1000)

	expense := suite.createTestExpense(store.ExpenseCreate{
		AmountUSD:    decimal.NewFromInt(10),
		Category:     models.CategoryFood,
		ExchangeRate: decimal.NewFromFloat(0.92),
	})

	// Later records with a different rate must not touch earlier ones
	currency := "JPY"
	_, err := suite.store.UpdateUser(store.UserUpdate{HomeCurrency: &currency})
	assert.Nil(suite.T(), err)

	suite.createTestExpense(store.ExpenseCreate{
		AmountUSD:    decimal.NewFromInt(10),
		Category:     models.CategoryFood,
		ExchangeRate: decimal.NewFromInt(149),
	})

	read, err := suite.store.Expense(expense.ID)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromFloat(9.2).Equal(read.AmountHomeCurrency), "Frozen home amount changed to %s", read.AmountHomeCurrency)
	assert.True(suite.T(), decimal.NewFromFloat(0.92).Equal(read.ExchangeRateUsed))
}

func (suite *TestSuiteStandard) TestAddExpenseCachesExchangeRate() {
	suite.initTestUser(1000)

	suite.createTestExpense(store.ExpenseCreate{
		AmountUSD:    decimal.NewFromInt(5),
		Category:     models.CategoryFood,
		ExchangeRate: decimal.NewFromInt(83),
	})

	user, err := suite.store.User()
	assert.Nil(suite.T(), err)
	if assert.True(suite.T(), user.LastKnownExchangeRate.Valid) {
		assert.True(suite.T(), decimal.NewFromInt(83).Equal(user.LastKnownExchangeRate.Decimal))
	}
}

func (suite *TestSuiteStandard) TestUpdateExpenseNote() {
	expense := suite.createTestExpense(store.ExpenseCreate{
		AmountUSD: decimal.NewFromInt(30),
		Category:  models.CategoryEntertainment,
		Note:      "cinema",
	})

	err := suite.store.UpdateExpenseNote(expense.ID, "cinema with friends")
	assert.Nil(suite.T(), err)

	read, err := suite.store.Expense(expense.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "cinema with friends", read.Note)
}

func (suite *TestSuiteStandard) TestUpdateExpenseNoteUnknownID() {
	err := suite.store.UpdateExpenseNote(uuid.New(), "does not exist")
	assert.Nil(suite.T(), err, "Updating an unknown expense must be a no-op")
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	suite.initTestUser(1000)

	keep := suite.createTestExpense(store.ExpenseCreate{
		AmountUSD: decimal.NewFromInt(100),
		Category:  models.CategoryFood,
	})
	drop := suite.createTestExpense(store.ExpenseCreate{
		AmountUSD: decimal.NewFromInt(40),
		Category:  models.CategoryTransport,
	})

	err := suite.store.DeleteExpense(drop.ID)
	assert.Nil(suite.T(), err)

	expenses, err := suite.store.Expenses()
	assert.Nil(suite.T(), err)
	if assert.Len(suite.T(), expenses, 1) {
		assert.Equal(suite.T(), keep.ID, expenses[0].ID)
	}

	total, err := suite.store.MonthlyTotal(types.MonthOf(time.Now()))
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromInt(-100).Equal(total.USD), "Deleted expense still counted: %s", total.USD)

	// Achievements earned before the deletion stay
	achievements, err := suite.store.Achievements()
	assert.Nil(suite.T(), err)
	assert.NotEmpty(suite.T(), achievements)
}

func (suite *TestSuiteStandard) TestDeleteExpenseUnknownID() {
	err := suite.store.DeleteExpense(uuid.New())
	assert.Nil(suite.T(), err, "Deleting an unknown expense must be a no-op")
}

func (suite *TestSuiteStandard) TestMonthExpenses() {
	now := time.Now().UTC()
	lastMonth := types.MonthOf(now).AddDate(0, -1)

	suite.createTestExpense(store.ExpenseCreate{
		AmountUSD: decimal.NewFromInt(10),
		Category:  models.CategoryFood,
		Timestamp: now,
	})
	suite.createTestExpense(store.ExpenseCreate{
		AmountUSD: decimal.NewFromInt(20),
		Category:  models.CategoryFood,
		Timestamp: time.Time(lastMonth),
	})

	expenses, err := suite.store.MonthExpenses(types.MonthOf(now))
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 1)

	expenses, err = suite.store.MonthExpenses(lastMonth)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 1)
}

package store_test

import (
	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserBeforeOnboarding() {
	_, err := suite.store.User()
	assert.ErrorIs(suite.T(), err, models.ErrNoUser)
}

func (suite *TestSuiteStandard) TestInitializeUser() {
	user, err := suite.store.InitializeUser("inr", decimal.NewFromInt(1000))
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "INR", user.HomeCurrency, "Currency code is not normalized to upper case")
	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(user.MonthlyBudget))
	assert.Equal(suite.T(), models.DisplayHome, user.PreferredDisplayCurrency)

	read, err := suite.store.User()
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), user.ID, read.ID)
}

func (suite *TestSuiteStandard) TestInitializeUserTwice() {
	suite.initTestUser(1000)

	_, err := suite.store.InitializeUser("EUR", decimal.NewFromInt(500))
	assert.ErrorIs(suite.T(), err, models.ErrAlreadyInitialized)
}

func (suite *TestSuiteStandard) TestInitializeUserNegativeBudget() {
	_, err := suite.store.InitializeUser("EUR", decimal.NewFromInt(-1))
	assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)
}

func (suite *TestSuiteStandard) TestUpdateUser() {
	suite.initTestUser(1000)

	currency := "GBP"
	budget := decimal.NewFromInt(1200)
	completed := true

	user, err := suite.store.UpdateUser(store.UserUpdate{
		HomeCurrency:        &currency,
		MonthlyBudget:       &budget,
		OnboardingCompleted: &completed,
	})
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "GBP", user.HomeCurrency)
	assert.True(suite.T(), budget.Equal(user.MonthlyBudget))
	assert.True(suite.T(), user.OnboardingCompleted)
}

func (suite *TestSuiteStandard) TestUpdateUserNegativeBudget() {
	suite.initTestUser(1000)

	budget := decimal.NewFromInt(-100)
	_, err := suite.store.UpdateUser(store.UserUpdate{MonthlyBudget: &budget})
	assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)
}

func (suite *TestSuiteStandard) TestUpdateUserWithoutUser() {
	budget := decimal.NewFromInt(100)
	_, err := suite.store.UpdateUser(store.UserUpdate{MonthlyBudget: &budget})
	assert.ErrorIs(suite.T(), err, models.ErrNoUser)
}

func (suite *TestSuiteStandard) TestToggleDisplayCurrency() {
	suite.initTestUser(1000)

	user, err := suite.store.ToggleDisplayCurrency()
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.DisplayUSD, user.PreferredDisplayCurrency)

	user, err = suite.store.ToggleDisplayCurrency()
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), models.DisplayHome, user.PreferredDisplayCurrency)
}

func (suite *TestSuiteStandard) TestToggleDisplayCurrencyWithoutUser() {
	_, err := suite.store.ToggleDisplayCurrency()
	assert.Nil(suite.T(), err, "Toggling before onboarding must be a no-op")
}

func (suite *TestSuiteStandard) TestResetAllData() {
	suite.initTestUser(1000)
	suite.createTestExpense(store.ExpenseCreate{
		AmountUSD: decimal.NewFromInt(50),
		Category:  models.CategoryFood,
	})
	suite.createTestIncome(store.IncomeCreate{
		AmountUSD: decimal.NewFromInt(500),
		Source:    models.SourceJob,
	})

	err := suite.store.ResetAllData()
	assert.Nil(suite.T(), err)

	_, err = suite.store.User()
	assert.ErrorIs(suite.T(), err, models.ErrNoUser)

	expenses, err := suite.store.Expenses()
	assert.Nil(suite.T(), err)
	assert.Empty(suite.T(), expenses)

	achievements, err := suite.store.Achievements()
	assert.Nil(suite.T(), err)
	assert.Empty(suite.T(), achievements)

	// Onboarding is possible again after a reset
	_, err = suite.store.InitializeUser("EUR", decimal.NewFromInt(800))
	assert.Nil(suite.T(), err)
}

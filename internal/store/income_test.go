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

func (suite *TestSuiteStandard) TestAddIncome() {
	income := suite.createTestIncome(store.IncomeCreate{
		AmountUSD:    decimal.NewFromInt(500),
		Source:       models.SourceScholarship,
		ExchangeRate: decimal.NewFromFloat(0.92),
	})

	assert.True(suite.T(), decimal.NewFromInt(460).Equal(income.AmountHomeCurrency), "Home currency amount is wrong: %s", income.AmountHomeCurrency)
	assert.True(suite.T(), types.MonthOf(time.Now()).Equal(income.Month))

	// Incomes never unlock achievements
	achievements, err := suite.store.Achievements()
	assert.Nil(suite.T(), err)
	assert.Empty(suite.T(), achievements)
}

func (suite *TestSuiteStandard) TestAddIncomeInvalidAmount() {
	_, err := suite.store.AddIncome(store.IncomeCreate{
		AmountUSD: decimal.Zero,
		Source:    models.SourceJob,
	})
	assert.ErrorIs(suite.T(), err, models.ErrInvalidAmount)
}

func (suite *TestSuiteStandard) TestDeleteIncome() {
	income := suite.createTestIncome(store.IncomeCreate{
		AmountUSD: decimal.NewFromInt(200),
		Source:    models.SourceFamily,
	})

	err := suite.store.DeleteIncome(income.ID)
	assert.Nil(suite.T(), err)

	incomes, err := suite.store.Incomes()
	assert.Nil(suite.T(), err)
	assert.Empty(suite.T(), incomes)
}

func (suite *TestSuiteStandard) TestDeleteIncomeUnknownID() {
	err := suite.store.DeleteIncome(uuid.New())
	assert.Nil(suite.T(), err, "Deleting an unknown income must be a no-op")
}

func (suite *TestSuiteStandard) TestMonthlyTotal() {
	suite.initTestUser(1000)
	month := types.MonthOf(time.Now())

	suite.createTestIncome(store.IncomeCreate{
		AmountUSD:    decimal.NewFromInt(800),
		Source:       models.SourceJob,
		ExchangeRate: decimal.NewFromInt(83),
	})
	suite.createTestExpense(store.ExpenseCreate{
		AmountUSD:    decimal.NewFromInt(300),
		Category:     models.CategoryHousing,
		ExchangeRate: decimal.NewFromInt(83),
	})

	total, err := suite.store.MonthlyTotal(month)
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), decimal.NewFromInt(500).Equal(total.USD), "USD total is wrong: %s", total.USD)
	assert.True(suite.T(), decimal.NewFromInt(41500).Equal(total.HomeCurrency), "Home currency total is wrong: %s", total.HomeCurrency)
}

func (suite *TestSuiteStandard) TestMonthlyTotalEmptyMonth() {
	total, err := suite.store.MonthlyTotal(types.NewMonth(2020, 1))
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), total.USD.IsZero())
	assert.True(suite.T(), total.HomeCurrency.IsZero())
}

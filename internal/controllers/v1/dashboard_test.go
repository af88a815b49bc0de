package v1_test

import (
	"net/http"

	v1 "github.com/finance-buddy/backend/internal/controllers/v1"
	"github.com/finance-buddy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetDashboard() {
	_ = createTestUser(suite, "INR", 1000)

	rate := decimal.NewFromInt(83)
	_ = createTestIncome(suite, v1.IncomeEditable{AmountUSD: decimal.NewFromInt(800), Source: "Scholarship", ExchangeRate: &rate})
	_ = createTestExpense(suite, v1.ExpenseEditable{AmountUSD: decimal.NewFromInt(100), Category: "Food", ExchangeRate: &rate})

	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	data := response.Data
	suite.Assert().True(data.Total.USD.Equal(decimal.NewFromInt(700)), "Net total is %s", data.Total.USD)

	// The display currency defaults to home, so the display total is the
	// home currency amount
	suite.Assert().True(data.DisplayTotal.Equal(data.Total.HomeCurrency))

	suite.Assert().Equal(1, data.Streak)
	suite.Assert().NotEmpty(data.MotivationalMessage)
	suite.Require().Len(data.CategorySpending, 1)
	suite.Assert().Equal("Food", string(data.CategorySpending[0].Category))
	suite.Assert().NotEmpty(data.RecentAchievements)
	suite.Assert().True(data.Projection.Projected.IsPositive())
}

func (suite *TestSuiteStandard) TestGetDashboardBeforeOnboarding() {
	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.Total.USD.IsZero())
	suite.Assert().Equal(0, response.Data.Streak)
	suite.Assert().Len(response.Data.ActiveAlerts, 0)
}

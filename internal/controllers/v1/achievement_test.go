package v1_test

import (
	"net/http"

	v1 "github.com/finance-buddy/backend/internal/controllers/v1"
	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestFirstExpenseAchievement() {
	_ = createTestUser(suite, "INR", 1000)

	rate := decimal.NewFromInt(83)
	_ = createTestExpense(suite, v1.ExpenseEditable{AmountUSD: decimal.NewFromInt(10), Category: "Food", ExchangeRate: &rate})

	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/achievements", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AchievementListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	var types []models.AchievementType
	for _, achievement := range response.Data {
		types = append(types, achievement.Type)
	}
	suite.Assert().Contains(types, models.AchievementFirstExpense)

	for _, achievement := range response.Data {
		if achievement.Type == models.AchievementFirstExpense {
			suite.Assert().Equal("Welcome to Tracking", achievement.Title)
		}
	}
}

func (suite *TestSuiteStandard) TestRecentAchievements() {
	_ = createTestUser(suite, "INR", 1000)

	rate := decimal.NewFromInt(83)
	_ = createTestExpense(suite, v1.ExpenseEditable{AmountUSD: decimal.NewFromInt(10), Category: "Food", ExchangeRate: &rate})

	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/achievements?recent=true", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AchievementListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotEmpty(response.Data)
	suite.Assert().LessOrEqual(len(response.Data), 5)
}

func (suite *TestSuiteStandard) TestAchievementsEmpty() {
	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/achievements", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AchievementListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}

package v1_test

import (
	"net/http"

	v1 "github.com/finance-buddy/backend/internal/controllers/v1"
	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetUserBeforeOnboarding() {
	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/user", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateUser() {
	user := createTestUser(suite, "inr", 1000)

	suite.Assert().Equal("INR", user.Data.HomeCurrency)
	suite.Assert().True(user.Data.MonthlyBudget.Equal(decimal.NewFromInt(1000)))
	suite.Assert().Equal(models.DisplayHome, user.Data.PreferredDisplayCurrency)
	suite.Assert().False(user.Data.OnboardingCompleted)

	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/user", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestCreateUserTwice() {
	_ = createTestUser(suite, "EUR", 800)

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/user", v1.UserCreate{
		HomeCurrency:  "EUR",
		MonthlyBudget: decimal.NewFromInt(800),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestCreateUserInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken body", "not json"},
		{"Negative budget", v1.UserCreate{HomeCurrency: "INR", MonthlyBudget: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/user", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestUpdateUser() {
	_ = createTestUser(suite, "INR", 1000)

	budget := decimal.NewFromInt(1200)
	completed := true
	recorder := test.Request(suite.router, suite.T(), http.MethodPatch, "/v1/user", v1.UserEditable{
		MonthlyBudget:       &budget,
		OnboardingCompleted: &completed,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.MonthlyBudget.Equal(budget))
	suite.Assert().True(response.Data.OnboardingCompleted)

	// Fields not in the body stay unchanged
	suite.Assert().Equal("INR", response.Data.HomeCurrency)
}

func (suite *TestSuiteStandard) TestUpdateUserWithoutUser() {
	budget := decimal.NewFromInt(1200)
	recorder := test.Request(suite.router, suite.T(), http.MethodPatch, "/v1/user", v1.UserEditable{
		MonthlyBudget: &budget,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestToggleDisplayCurrency() {
	_ = createTestUser(suite, "INR", 1000)

	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/user/display-currency", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.DisplayUSD, response.Data.PreferredDisplayCurrency)

	recorder = test.Request(suite.router, suite.T(), http.MethodPost, "/v1/user/display-currency", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(models.DisplayHome, response.Data.PreferredDisplayCurrency)
}

func (suite *TestSuiteStandard) TestToggleDisplayCurrencyWithoutUser() {
	recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/user/display-currency", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

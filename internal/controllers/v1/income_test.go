package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/finance-buddy/backend/internal/controllers/v1"
	"github.com/finance-buddy/backend/internal/uuid"
	"github.com/finance-buddy/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateIncome() {
	_ = createTestUser(suite, "EUR", 1000)

	rate := decimal.NewFromFloat(0.92)
	income := createTestIncome(suite, v1.IncomeEditable{
		AmountUSD:    decimal.NewFromInt(500),
		Source:       "Scholarship",
		Note:         "Monthly stipend",
		ExchangeRate: &rate,
	})

	suite.Assert().True(income.Data.AmountUSD.Equal(decimal.NewFromInt(500)))
	suite.Assert().True(income.Data.AmountHomeCurrency.Equal(decimal.NewFromInt(460)), "Amount in home currency is %s", income.Data.AmountHomeCurrency)
	suite.Assert().Equal("Monthly stipend", income.Data.Note)
}

func (suite *TestSuiteStandard) TestCreateIncomeInvalid() {
	_ = createTestUser(suite, "EUR", 1000)

	tests := []struct {
		name string
		body any
	}{
		{"Broken body", "not json"},
		{"Zero amount", v1.IncomeEditable{AmountUSD: decimal.Zero, Source: "Job"}},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.router, suite.T(), http.MethodPost, "/v1/incomes", tt.body)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGetIncomes() {
	_ = createTestUser(suite, "EUR", 1000)

	rate := decimal.NewFromFloat(0.92)
	_ = createTestIncome(suite, v1.IncomeEditable{AmountUSD: decimal.NewFromInt(500), Source: "Scholarship", ExchangeRate: &rate})
	_ = createTestIncome(suite, v1.IncomeEditable{AmountUSD: decimal.NewFromInt(120), Source: "Part-time job", ExchangeRate: &rate})

	recorder := test.Request(suite.router, suite.T(), http.MethodGet, "/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IncomeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 2)

	recorder = test.Request(suite.router, suite.T(), http.MethodGet, "/v1/incomes?month=2020-01", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestDeleteIncome() {
	_ = createTestUser(suite, "EUR", 1000)

	rate := decimal.NewFromFloat(0.92)
	income := createTestIncome(suite, v1.IncomeEditable{AmountUSD: decimal.NewFromInt(500), Source: "Scholarship", ExchangeRate: &rate})

	recorder := test.Request(suite.router, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/incomes/%s", income.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.router, suite.T(), http.MethodGet, fmt.Sprintf("/v1/incomes/%s", income.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.router, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/incomes/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

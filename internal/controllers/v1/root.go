package v1

import (
	"net/http"

	"github.com/finance-buddy/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	User              string `json:"user" example:"/v1/user"`                           // The user profile
	Expenses          string `json:"expenses" example:"/v1/expenses"`                   // List and create expenses
	Incomes           string `json:"incomes" example:"/v1/incomes"`                     // List and create incomes
	RecurringExpenses string `json:"recurringExpenses" example:"/v1/recurring-expenses"` // List and create recurring expenses
	Alerts            string `json:"alerts" example:"/v1/alerts"`                       // List and dismiss alerts
	Achievements      string `json:"achievements" example:"/v1/achievements"`           // List achievements
	Months            string `json:"months" example:"/v1/months"`                       // Monthly summaries
	Dashboard         string `json:"dashboard" example:"/v1/dashboard"`                 // Aggregated dashboard data
	ExchangeRates     string `json:"exchangeRates" example:"/v1/exchange-rates"`        // Exchange rate lookup
}

// @Summary		v1 API root
// @Description	Entrypoint for the v1 API, listing all endpoints
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			User:              "/v1/user",
			Expenses:          "/v1/expenses",
			Incomes:           "/v1/incomes",
			RecurringExpenses: "/v1/recurring-expenses",
			Alerts:            "/v1/alerts",
			Achievements:      "/v1/achievements",
			Months:            "/v1/months",
			Dashboard:         "/v1/dashboard",
			ExchangeRates:     "/v1/exchange-rates",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// Package v1 implements the first version of the HTTP API.
package v1

import (
	"github.com/finance-buddy/backend/internal/currency"
	"github.com/finance-buddy/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// Controller holds the collaborators the API handlers work with.
type Controller struct {
	Store *store.Store
	Rates *currency.Client
}

// RegisterRoutes attaches all v1 routes to the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRoot)
		r.GET("", GetRoot)
		r.DELETE("", co.Cleanup)
	}

	co.RegisterUserRoutes(r.Group("/user"))
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterIncomeRoutes(r.Group("/incomes"))
	co.RegisterRecurringExpenseRoutes(r.Group("/recurring-expenses"))
	co.RegisterAlertRoutes(r.Group("/alerts"))
	co.RegisterAchievementRoutes(r.Group("/achievements"))
	co.RegisterMonthRoutes(r.Group("/months"))
	co.RegisterDashboardRoutes(r.Group("/dashboard"))
	co.RegisterExchangeRateRoutes(r.Group("/exchange-rates"))
}

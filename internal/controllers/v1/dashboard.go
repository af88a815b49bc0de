package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/finance-buddy/backend/internal/currency"
	"github.com/finance-buddy/backend/internal/httputil"
	"github.com/finance-buddy/backend/internal/models"
	"github.com/finance-buddy/backend/internal/store"
	"github.com/finance-buddy/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Dashboard aggregates everything the home screen needs in one response.
type Dashboard struct {
	Month               types.Month               `json:"month" example:"2023-04"`
	Total               store.Total               `json:"total"`                                 // Income minus expenses in both currencies
	DisplayTotal        decimal.Decimal           `json:"displayTotal" example:"-423.42"`        // Net total in the preferred display currency
	Projection          store.Projection          `json:"projection"`                            // Linear spend projection for the month
	Streak              int                       `json:"streak" example:"4"`                    // Consecutive days with at least one expense
	MotivationalMessage string                    `json:"motivationalMessage" example:"Great start! You're well under budget."`
	CategorySpending    []store.CategorySpend     `json:"categorySpending"`                      // Expenses grouped by category, highest first
	ActiveAlerts        []models.Alert            `json:"activeAlerts"`                          // Non-dismissed alerts, most severe first
	RecentAchievements  []models.Achievement      `json:"recentAchievements"`                    // Latest earned achievements
	UpcomingRecurring   []models.RecurringExpense `json:"upcomingRecurring"`                     // Bills still due this month
}

type DashboardResponse struct {
	Data Dashboard `json:"data"` // The dashboard
}

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", co.GetDashboard)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the aggregated data for the current month in a single request
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	httpError
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	now := time.Now()
	month := types.MonthOf(now)

	total, err := co.Store.MonthlyTotal(month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	projection, err := co.Store.ProjectedSpend(now)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	streak, err := co.Store.Streak(now)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	message, err := co.Store.MotivationalMessage(now)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	spending, err := co.Store.CategorySpending(month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	alerts, err := co.Store.ActiveAlerts()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	achievements, err := co.Store.RecentAchievements(recentAchievementCount)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	upcoming, err := co.Store.UpcomingRecurringExpenses(now)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// The display total follows the user's preference, USD before onboarding
	displayHome := false
	user, err := co.Store.User()
	if err != nil && !errors.Is(err, models.ErrNoUser) {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}
	if err == nil {
		displayHome = user.PreferredDisplayCurrency == models.DisplayHome
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Data: Dashboard{
			Month:               month,
			Total:               total,
			DisplayTotal:        currency.DisplayAmount(total.USD, total.HomeCurrency, displayHome),
			Projection:          projection,
			Streak:              streak,
			MotivationalMessage: message,
			CategorySpending:    spending,
			ActiveAlerts:        alerts,
			RecentAchievements:  achievements,
			UpcomingRecurring:   upcoming,
		},
	})
}

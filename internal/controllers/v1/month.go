package v1

import (
	"net/http"

	"github.com/finance-buddy/backend/internal/httputil"
	"github.com/finance-buddy/backend/internal/store"
	"github.com/finance-buddy/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// Month is the summary of one calendar month.
type Month struct {
	Month            types.Month           `json:"month" example:"2023-04"`
	Total            store.Total           `json:"total"`            // Income minus expenses in both currencies
	CategorySpending []store.CategorySpend `json:"categorySpending"` // Expenses grouped by category, highest first
}

type MonthResponse struct {
	Data Month `json:"data"` // The month summary
}

func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsMonth)
	r.GET("/:month", co.GetMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months/{month} [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month summary
// @Description	Returns the net total and category breakdown for a month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func (co Controller) GetMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	month := types.MonthOf(uri.Month)

	total, err := co.Store.MonthlyTotal(month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	spending, err := co.Store.CategorySpending(month)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{
		Data: Month{
			Month:            month,
			Total:            total,
			CategorySpending: spending,
		},
	})
}

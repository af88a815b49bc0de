package v1

import (
	"net/http"

	"github.com/finance-buddy/backend/internal/httputil"
	"github.com/finance-buddy/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsIncomes)
		r.GET("", co.GetIncomes)
		r.POST("", co.CreateIncome)
	}
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", co.GetIncome)
		r.DELETE("/:id", co.DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomes(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Create income
// @Description	Records an income with the same frozen-rate semantics as expenses
// @Tags			Incomes
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes [post]
func (co Controller) CreateIncome(c *gin.Context) {
	var editable IncomeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	rate := co.resolveRate(c, editable.ExchangeRate)

	income, err := co.Store.AddIncome(editable.create(rate))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{Data: income})
}

// @Summary		List incomes
// @Description	Returns incomes, newest first. Use the month parameter to only get one month.
// @Tags			Incomes
// @Produce		json
// @Success		200		{object}	IncomeListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	false	"Only incomes of this month. Format: YYYY-MM"
// @Router			/v1/incomes [get]
func (co Controller) GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	if filter.Month.IsZero() {
		list, err := co.Store.Incomes()
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, IncomeListResponse{Data: list})
		return
	}

	list, err := co.Store.MonthIncomes(types.MonthOf(filter.Month))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, IncomeListResponse{Data: list})
}

// @Summary		Get income
// @Description	Returns a single income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the income"
// @Router			/v1/incomes/{id} [get]
func (co Controller) GetIncome(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	income, err := co.Store.Income(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, IncomeResponse{Data: income})
}

// @Summary		Delete income
// @Description	Deletes an income. Totals and alerts are re-evaluated without it.
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the income"
// @Router			/v1/incomes/{id} [delete]
func (co Controller) DeleteIncome(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if _, err := co.Store.Income(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Store.DeleteIncome(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

package v1

import (
	"net/http"

	"github.com/finance-buddy/backend/internal/httputil"
	"github.com/finance-buddy/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsExpenses)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpenseNote)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create expense
// @Description	Records an expense. The home currency amount is frozen with the rate used at creation. Omitting the exchange rate fetches a live one.
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	rate := co.resolveRate(c, editable.ExchangeRate)

	expense, err := co.Store.AddExpense(editable.create(rate))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}

// @Summary		List expenses
// @Description	Returns expenses, newest first. Use the month parameter to only get one month.
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			month	query		string	false	"Only expenses of this month. Format: YYYY-MM"
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	if filter.Month.IsZero() {
		list, err := co.Store.Expenses()
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, ExpenseListResponse{Data: list})
		return
	}

	list, err := co.Store.MonthExpenses(types.MonthOf(filter.Month))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: list})
}

// @Summary		Get expense
// @Description	Returns a single expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	expense, err := co.Store.Expense(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: expense})
}

// @Summary		Update expense note
// @Description	Updates the note of an expense. Amounts and category are immutable once recorded.
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			id		path		string				true	"ID of the expense"
// @Param			note	body		ExpenseNoteEditable	true	"Note"
// @Router			/v1/expenses/{id} [patch]
func (co Controller) UpdateExpenseNote(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var editable ExpenseNoteEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, err := co.Store.Expense(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Store.UpdateExpenseNote(uri.ID.UUID, editable.Note); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	expense, err := co.Store.Expense(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense. Totals and alerts are re-evaluated without it.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if _, err := co.Store.Expense(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Store.DeleteExpense(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// resolveRate returns the exchange rate for a new record: the one from
// the request body if set, otherwise a live rate for the user's home
// currency. Before onboarding the rate is 1.
func (co Controller) resolveRate(c *gin.Context, bodyRate *decimal.Decimal) decimal.Decimal {
	if bodyRate != nil && bodyRate.IsPositive() {
		return *bodyRate
	}

	user, err := co.Store.User()
	if err != nil {
		return decimal.NewFromInt(1)
	}

	return co.Rates.FetchRate(c.Request.Context(), user.HomeCurrency)
}

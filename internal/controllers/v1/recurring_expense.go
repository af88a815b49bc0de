package v1

import (
	"net/http"
	"time"

	"github.com/finance-buddy/backend/internal/httputil"
	"github.com/finance-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterRecurringExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRecurringExpenses)
		r.GET("", co.GetRecurringExpenses)
		r.POST("", co.CreateRecurringExpense)
	}
	{
		r.OPTIONS("/:id", OptionsRecurringExpenseDetail)
		r.GET("/:id", co.GetRecurringExpense)
		r.DELETE("/:id", co.DeleteRecurringExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringExpenses
// @Success		204
// @Router			/v1/recurring-expenses [options]
func OptionsRecurringExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			RecurringExpenses
// @Success		204
// @Router			/v1/recurring-expenses/{id} [options]
func OptionsRecurringExpenseDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Create recurring expense
// @Description	Records a recurring bill like rent or a subscription
// @Tags			RecurringExpenses
// @Produce		json
// @Success		201					{object}	RecurringExpenseResponse
// @Failure		400					{object}	httpError
// @Failure		500					{object}	httpError
// @Param			recurringExpense	body		RecurringExpenseEditable	true	"RecurringExpense"
// @Router			/v1/recurring-expenses [post]
func (co Controller) CreateRecurringExpense(c *gin.Context) {
	var editable RecurringExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	recurring, err := co.Store.AddRecurringExpense(editable.create())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, RecurringExpenseResponse{Data: recurring})
}

// @Summary		List recurring expenses
// @Description	Returns active recurring expenses ordered by due day. With upcoming=true, only the ones still due this month.
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200			{object}	RecurringExpenseListResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			upcoming	query		bool	false	"Only bills still due this month"
// @Router			/v1/recurring-expenses [get]
func (co Controller) GetRecurringExpenses(c *gin.Context) {
	var filter RecurringExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var list []models.RecurringExpense
	var err error
	if filter.Upcoming {
		list, err = co.Store.UpcomingRecurringExpenses(time.Now())
	} else {
		list, err = co.Store.RecurringExpenses()
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, RecurringExpenseListResponse{Data: list})
}

// @Summary		Get recurring expense
// @Description	Returns a single recurring expense
// @Tags			RecurringExpenses
// @Produce		json
// @Success		200	{object}	RecurringExpenseResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the recurring expense"
// @Router			/v1/recurring-expenses/{id} [get]
func (co Controller) GetRecurringExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	recurring, err := co.Store.RecurringExpense(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, RecurringExpenseResponse{Data: recurring})
}

// @Summary		Delete recurring expense
// @Description	Deactivates a recurring expense. The record is kept for reactivation.
// @Tags			RecurringExpenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the recurring expense"
// @Router			/v1/recurring-expenses/{id} [delete]
func (co Controller) DeleteRecurringExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if _, err := co.Store.RecurringExpense(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Store.DeleteRecurringExpense(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

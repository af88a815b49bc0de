package v1

import (
	"net/http"

	"github.com/finance-buddy/backend/internal/httputil"
	"github.com/finance-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type AlertListResponse struct {
	Data []models.Alert `json:"data"` // List of alerts
}

type AlertQueryFilter struct {
	Active bool `form:"active" example:"true"` // Only alerts that have not been dismissed
}

func (co Controller) RegisterAlertRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsAlerts)
		r.GET("", co.GetAlerts)
	}
	{
		r.OPTIONS("/:id", OptionsAlertDetail)
		r.DELETE("/:id", co.DismissAlert)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Router			/v1/alerts [options]
func OptionsAlerts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Alerts
// @Success		204
// @Router			/v1/alerts/{id} [options]
func OptionsAlertDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		List alerts
// @Description	Returns all alerts including dismissed ones. With active=true, only the non-dismissed ones, most severe first.
// @Tags			Alerts
// @Produce		json
// @Success		200		{object}	AlertListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			active	query		bool	false	"Only alerts that have not been dismissed"
// @Router			/v1/alerts [get]
func (co Controller) GetAlerts(c *gin.Context) {
	var filter AlertQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var list []models.Alert
	var err error
	if filter.Active {
		list, err = co.Store.ActiveAlerts()
	} else {
		list, err = co.Store.Alerts()
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AlertListResponse{Data: list})
}

// @Summary		Dismiss alert
// @Description	Marks an alert as dismissed. The alert is kept, it just stops being active. Unknown IDs are tolerated.
// @Tags			Alerts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the alert"
// @Router			/v1/alerts/{id} [delete]
func (co Controller) DismissAlert(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	if err := co.Store.DismissAlert(uri.ID.UUID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type cleanupQuery struct {
	Confirm string `form:"confirm"`
}

// @Summary		Delete everything
// @Description	Permanently deletes all data. Can only be used when the confirmation parameter is set to the correct value.
// @Tags			v1
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			confirm	query	string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params cleanupQuery
	if err := c.Bind(&params); err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{Error: errCleanupConfirmation.Error()})
		return
	}

	if err := co.Store.ResetAllData(); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

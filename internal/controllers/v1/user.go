package v1

import (
	"net/http"

	"github.com/finance-buddy/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsUser)
		r.GET("", co.GetUser)
		r.POST("", co.CreateUser)
		r.PATCH("", co.UpdateUser)
	}
	{
		r.OPTIONS("/display-currency", OptionsDisplayCurrency)
		r.POST("/display-currency", co.ToggleDisplayCurrency)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/v1/user [options]
func OptionsUser(c *gin.Context) {
	httputil.OptionsGetPostPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/v1/user/display-currency [options]
func OptionsDisplayCurrency(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create user
// @Description	Creates the user profile during onboarding. There is exactly one profile, creating a second one is rejected.
// @Tags			User
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	httpError
// @Failure		409		{object}	httpError
// @Param			user	body		UserCreate	true	"User"
// @Router			/v1/user [post]
func (co Controller) CreateUser(c *gin.Context) {
	var create UserCreate
	if err := httputil.BindData(c, &create); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user, err := co.Store.InitializeUser(create.HomeCurrency, create.MonthlyBudget)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: user})
}

// @Summary		Get user
// @Description	Returns the user profile
// @Tags			User
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		404	{object}	httpError
// @Router			/v1/user [get]
func (co Controller) GetUser(c *gin.Context) {
	user, err := co.Store.User()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: user})
}

// @Summary		Update user
// @Description	Updates the user profile. Only the fields in the body are changed.
// @Tags			User
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/user [patch]
func (co Controller) UpdateUser(c *gin.Context) {
	var editable UserEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user, err := co.Store.UpdateUser(editable.update())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: user})
}

// @Summary		Toggle display currency
// @Description	Flips the preferred display currency between USD and the home currency
// @Tags			User
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		404	{object}	httpError
// @Router			/v1/user/display-currency [post]
func (co Controller) ToggleDisplayCurrency(c *gin.Context) {
	user, err := co.Store.User()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user, err = co.Store.ToggleDisplayCurrency()
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: user})
}

package v1

import (
	"net/http"

	"github.com/finance-buddy/backend/internal/httputil"
	"github.com/finance-buddy/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// recentAchievementCount is how many achievements "recent" means.
const recentAchievementCount = 5

type AchievementListResponse struct {
	Data []models.Achievement `json:"data"` // List of achievements
}

type AchievementQueryFilter struct {
	Recent bool `form:"recent" example:"true"` // Only the most recently earned achievements
}

func (co Controller) RegisterAchievementRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAchievements)
	r.GET("", co.GetAchievements)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Achievements
// @Success		204
// @Router			/v1/achievements [options]
func OptionsAchievements(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List achievements
// @Description	Returns earned achievements, newest first. With recent=true, only the latest five.
// @Tags			Achievements
// @Produce		json
// @Success		200		{object}	AchievementListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			recent	query		bool	false	"Only the most recently earned achievements"
// @Router			/v1/achievements [get]
func (co Controller) GetAchievements(c *gin.Context) {
	var filter AchievementQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var list []models.Achievement
	var err error
	if filter.Recent {
		list, err = co.Store.RecentAchievements(recentAchievementCount)
	} else {
		list, err = co.Store.Achievements()
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AchievementListResponse{Data: list})
}

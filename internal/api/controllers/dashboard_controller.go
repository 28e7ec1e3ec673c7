package controllers

import (
	"github.com/gin-gonic/gin"

	"alphagym/internal/services"
	"alphagym/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// OwnerDashboard godoc
// @Summary Owner KPI dashboard
// @Description Member status counters, coach count and the five most recent memberships
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/dashboard [get]
func (d *DashboardController) OwnerDashboard(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	dashboard, err := d.dashboardService.OwnerDashboard(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard retrieved successfully")
}

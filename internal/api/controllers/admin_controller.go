package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alphagym/internal/models/request_models"
	"alphagym/internal/services"
	"alphagym/pkg/utils"
)

type AdminController struct {
	provisioningService services.ProvisioningServiceInterface
	dashboardService    services.DashboardServiceInterface
}

func NewAdminController(
	provisioningService services.ProvisioningServiceInterface,
	dashboardService services.DashboardServiceInterface,
) *AdminController {
	return &AdminController{
		provisioningService: provisioningService,
		dashboardService:    dashboardService,
	}
}

// CreateOwner godoc
// @Summary Provision a gym owner with their gym
// @Description Creates credential, owner profile and gym; returns the one-time temporary password
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.CreateOwnerRequest true "Owner and gym payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/owners [post]
func (a *AdminController) CreateOwner(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.provisioningService.ProvisionOwner(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Owner created successfully")
}

// ListOwners godoc
// @Summary List all gym owners with their gyms
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/owners [get]
func (a *AdminController) ListOwners(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	owners, err := a.dashboardService.ListOwners(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, owners, "Owners retrieved successfully")
}

// GetAnalytics godoc
// @Summary Platform-wide analytics with a per-gym breakdown
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/analytics [get]
func (a *AdminController) GetAnalytics(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	analytics, err := a.dashboardService.AdminAnalytics(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, analytics, "Analytics retrieved successfully")
}

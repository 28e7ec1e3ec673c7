package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alphagym/internal/models/request_models"
	"alphagym/internal/services"
	"alphagym/pkg/utils"
)

type CoachController struct {
	provisioningService services.ProvisioningServiceInterface
	coachService        services.CoachServiceInterface
}

func NewCoachController(
	provisioningService services.ProvisioningServiceInterface,
	coachService services.CoachServiceInterface,
) *CoachController {
	return &CoachController{
		provisioningService: provisioningService,
		coachService:        coachService,
	}
}

// CreateCoach godoc
// @Summary Provision a coach in the owner's gym
// @Description Creates credential and coach profile; returns the one-time temporary password
// @Tags Coaches
// @Accept json
// @Produce json
// @Param request body request_models.CreateCoachRequest true "Coach payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /api/coaches [post]
func (cc *CoachController) CreateCoach(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := cc.provisioningService.ProvisionCoach(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Coach created successfully")
}

// ListGymCoaches godoc
// @Summary List the owner's coaches with client counts
// @Tags Coaches
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/coaches [get]
func (cc *CoachController) ListGymCoaches(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	coaches, err := cc.coachService.ListGymCoaches(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, coaches, "Coaches retrieved successfully")
}

// ListAllCoaches godoc
// @Summary Browse every coach across gyms
// @Description Member-facing find-a-coach view, busiest coaches first
// @Tags Coaches
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/coaches/all [get]
func (cc *CoachController) ListAllCoaches(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	coaches, err := cc.coachService.ListAllCoaches(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, coaches, "Coaches retrieved successfully")
}

// DeleteCoach godoc
// @Summary Remove a coach from the owner's gym
// @Description Detaches the coach's members before deleting the account
// @Tags Coaches
// @Produce json
// @Param id path string true "Coach id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/coaches/{id} [delete]
func (cc *CoachController) DeleteCoach(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	coachID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid coach id")
		return
	}

	if err := cc.coachService.DeleteCoach(c.Request.Context(), id, coachID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Coach removed successfully")
}

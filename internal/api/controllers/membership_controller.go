package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alphagym/internal/models/db_models"
	"alphagym/internal/models/request_models"
	"alphagym/internal/models/response_models"
	"alphagym/internal/services"
	"alphagym/pkg/utils"
)

type MembershipController struct {
	provisioningService services.ProvisioningServiceInterface
	membershipService   services.MembershipServiceInterface
}

func NewMembershipController(
	provisioningService services.ProvisioningServiceInterface,
	membershipService services.MembershipServiceInterface,
) *MembershipController {
	return &MembershipController{
		provisioningService: provisioningService,
		membershipService:   membershipService,
	}
}

// CreateMember godoc
// @Summary Enroll a member with a membership plan
// @Description Creates credential, profile and membership; dates and price are derived from the plan
// @Tags Memberships
// @Accept json
// @Produce json
// @Param request body request_models.CreateMemberRequest true "Member and plan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/members [post]
func (mc *MembershipController) CreateMember(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := mc.provisioningService.ProvisionMember(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Member created successfully")
}

// ListMemberships godoc
// @Summary List memberships in the caller's scope
// @Description Owners see their whole gym; coaches see only their own clients
// @Tags Memberships
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/memberships [get]
func (mc *MembershipController) ListMemberships(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	var (
		memberships []response_models.MembershipResponse
		err         error
	)
	if c.GetString("Role") == string(db_models.RoleCoach) {
		memberships, err = mc.membershipService.ListForCoach(c.Request.Context(), id)
	} else {
		memberships, err = mc.membershipService.ListForGym(c.Request.Context(), id)
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, memberships, "Memberships retrieved successfully")
}

// GetMyMembership godoc
// @Summary Get the authenticated member's membership
// @Tags Memberships
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/memberships/me [get]
func (mc *MembershipController) GetMyMembership(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	membership, err := mc.membershipService.GetMine(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, membership, "Membership retrieved successfully")
}

// UpdateMembership godoc
// @Summary Override membership fields
// @Description Owner-only; changing the plan or start date without an explicit end date re-derives it
// @Tags Memberships
// @Accept json
// @Produce json
// @Param id path string true "Membership id"
// @Param request body request_models.UpdateMembershipRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/memberships/{id} [put]
func (mc *MembershipController) UpdateMembership(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	membershipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid membership id")
		return
	}

	var req request_models.UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	membership, err := mc.membershipService.Update(c.Request.Context(), id, membershipID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, membership, "Membership updated successfully")
}

// DeleteMembership godoc
// @Summary Remove a membership
// @Description The member account stays and can be re-enrolled later
// @Tags Memberships
// @Produce json
// @Param id path string true "Membership id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/memberships/{id} [delete]
func (mc *MembershipController) DeleteMembership(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	membershipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid membership id")
		return
	}

	if err := mc.membershipService.Delete(c.Request.Context(), id, membershipID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Membership removed successfully")
}

// ReassignCoach godoc
// @Summary Assign a coach to a membership
// @Description Allowed to the membership's member and the gym owner; the coach must be of the same gym
// @Tags Memberships
// @Accept json
// @Produce json
// @Param id path string true "Membership id"
// @Param request body request_models.ReassignCoachRequest true "Coach id payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/memberships/{id}/coach [put]
func (mc *MembershipController) ReassignCoach(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	membershipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid membership id")
		return
	}

	var req request_models.ReassignCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	coachID, err := uuid.Parse(req.CoachID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid coach id")
		return
	}

	membership, err := mc.membershipService.ReassignCoach(c.Request.Context(), id, membershipID, coachID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, membership, "Coach assigned successfully")
}

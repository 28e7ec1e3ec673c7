package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alphagym/internal/models/request_models"
	"alphagym/internal/services"
	"alphagym/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// actorID pulls the authenticated account id set by the JWT middleware.
func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return uuid.Nil, false
	}
	return id, true
}

// Login godoc
// @Summary Sign in with email and password
// @Description Authenticate and return a token; first_login signals a forced password reset
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

// SetPassword godoc
// @Summary Replace the temporary password
// @Description Completes the forced first-login reset; requires a logged-in session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SetPasswordRequest true "New password payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/auth/password [post]
func (a *AccountController) SetPassword(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.CompletePasswordReset(c.Request.Context(), id, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password updated successfully")
}

// Logout godoc
// @Summary Invalidate the current token
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	token := c.GetString("token")
	claims, err := utils.ValidateToken(token)
	if err != nil || claims.ExpiresAt == nil {
		utils.RespondSuccess(c, nil, "Logged out")
		return
	}

	a.accountService.Logout(token, claims.ExpiresAt.Time)
	utils.RespondSuccess(c, nil, "Logged out")
}

// GetMe godoc
// @Summary Get the authenticated profile
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/me [get]
func (a *AccountController) GetMe(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	profile, err := a.accountService.GetProfile(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile retrieved successfully")
}

// UpdateMe godoc
// @Summary Update the authenticated profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} utils.APIResponse
// @Router /api/me [put]
func (a *AccountController) UpdateMe(c *gin.Context) {
	id, ok := actorID(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := a.accountService.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

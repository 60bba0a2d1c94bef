package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/auth"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// UserController handles endpoints for the authenticated user's own account.
type UserController struct {
	getProfileUseCase     *auth.GetProfileUseCase
	updateSettingsUseCase *auth.UpdateSettingsUseCase
	deleteAccountUseCase  *auth.DeleteAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *auth.GetProfileUseCase,
	updateSettingsUseCase *auth.UpdateSettingsUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:     getProfileUseCase,
		updateSettingsUseCase: updateSettingsUseCase,
		deleteAccountUseCase:  deleteAccountUseCase,
	}
}

// Me handles GET /me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), auth.GetProfileInput{
		UserID: userID,
	})
	if err != nil {
		respondCoded(ctx, authStatus, "Account request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// UpdateSettings handles PATCH /me requests.
func (c *UserController) UpdateSettings(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	output, err := c.updateSettingsUseCase.Execute(ctx.Request.Context(), auth.UpdateSettingsInput{
		UserID:             userID,
		Name:               req.Name,
		EmailNotifications: req.EmailNotifications,
		ThresholdAlerts:    req.ThresholdAlerts,
	})
	if err != nil {
		respondCoded(ctx, authStatus, "Account request failed", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// DeleteAccount handles DELETE /me requests.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.DeleteAccountRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), auth.DeleteAccountInput{
		UserID:       userID,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		respondCoded(ctx, authStatus, "Account deletion failed", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/auth"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
)

// authStatus maps account and session failures to HTTP statuses.
var authStatus = map[domainerror.AuthErrorCode]int{
	domainerror.ErrCodeEmailExists:         http.StatusConflict,
	domainerror.ErrCodeTermsNotAccepted:    http.StatusBadRequest,
	domainerror.ErrCodeWeakPassword:        http.StatusBadRequest,
	domainerror.ErrCodeInvalidEmail:        http.StatusBadRequest,
	domainerror.ErrCodeMissingFields:       http.StatusBadRequest,
	domainerror.ErrCodeInvalidResetToken:   http.StatusBadRequest,
	domainerror.ErrCodeInvalidConfirmation: http.StatusBadRequest,
	domainerror.ErrCodeInvalidCredentials:  http.StatusUnauthorized,
	domainerror.ErrCodeInvalidToken:        http.StatusUnauthorized,
	domainerror.ErrCodeExpiredToken:        http.StatusUnauthorized,
	domainerror.ErrCodeMissingToken:        http.StatusUnauthorized,
	domainerror.ErrCodeSessionRevoked:      http.StatusUnauthorized,
	domainerror.ErrCodeUserNotFound:        http.StatusNotFound,
	domainerror.ErrCodeRateLimited:         http.StatusTooManyRequests,
}

// AuthController handles the public account and session endpoints.
type AuthController struct {
	register *auth.RegisterUserUseCase
	login    *auth.LoginUserUseCase
	refresh  *auth.RefreshTokenUseCase
	logout   *auth.LogoutUserUseCase
	forgot   *auth.ForgotPasswordUseCase
	reset    *auth.ResetPasswordUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	register *auth.RegisterUserUseCase,
	login *auth.LoginUserUseCase,
	refresh *auth.RefreshTokenUseCase,
	logout *auth.LogoutUserUseCase,
	forgot *auth.ForgotPasswordUseCase,
	reset *auth.ResetPasswordUseCase,
) *AuthController {
	return &AuthController{
		register: register,
		login:    login,
		refresh:  refresh,
		logout:   logout,
		forgot:   forgot,
		reset:    reset,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	out, err := c.register.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Email:         req.Email,
		Name:          req.Name,
		Password:      req.Password,
		TermsAccepted: req.TermsAccepted,
	})
	if err != nil {
		respondCoded(ctx, authStatus, "Registration failed", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToSessionResponse(out))
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	out, err := c.login.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		respondCoded(ctx, authStatus, "Login failed", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSessionResponse(out))
}

// RefreshToken handles POST /auth/refresh requests.
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingToken) {
		return
	}

	out, err := c.refresh.Execute(ctx.Request.Context(), auth.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		respondCoded(ctx, authStatus, "Token refresh failed", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSessionResponse(out))
}

// Logout handles POST /auth/logout requests. It always answers 200.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	_ = ctx.ShouldBindJSON(&req)

	userID, _ := middleware.GetUserIDFromContext(ctx)
	c.logout.Execute(ctx.Request.Context(), auth.LogoutUserInput{
		RefreshToken: req.RefreshToken,
		UserID:       userID,
		AllDevices:   req.AllDevices,
	})
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
}

// ForgotPassword handles POST /auth/forgot-password requests.
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeInvalidEmail) {
		return
	}

	if err := c.forgot.Execute(ctx.Request.Context(), auth.ForgotPasswordInput{Email: req.Email}); err != nil {
		respondCoded(ctx, authStatus, "Password reset request failed", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: auth.ForgotPasswordMessage})
}

// ResetPassword handles POST /auth/reset-password requests.
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if !bindBody(ctx, &req, domainerror.ErrCodeMissingFields) {
		return
	}

	err := c.reset.Execute(ctx.Request.Context(), auth.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		respondCoded(ctx, authStatus, "Password reset failed", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password has been successfully reset"})
}

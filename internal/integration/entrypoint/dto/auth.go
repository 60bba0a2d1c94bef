// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/application/usecase/auth"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email         string `json:"email" binding:"required"`
	Name          string `json:"name" binding:"max=100"`
	Password      string `json:"password" binding:"required"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest is the body of POST /auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest is the body of POST /auth/logout. Both fields are optional.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
	AllDevices   bool   `json:"all_devices"`
}

// ForgotPasswordRequest is the body of POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest is the body of POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// SessionResponse is returned by register, login and refresh. User is
// omitted after a refresh.
type SessionResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"` // seconds
	User         *UserResponse `json:"user,omitempty"`
}

// ToSessionResponse converts a use case session into its response.
func ToSessionResponse(out *auth.SessionOutput) SessionResponse {
	resp := SessionResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(time.Until(out.ExpiresAt).Round(time.Second).Seconds()),
	}
	if out.User != nil {
		user := ToUserResponse(out.User)
		resp.User = &user
	}
	return resp
}

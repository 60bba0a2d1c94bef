// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Name               string     `json:"name"`
	EmailNotifications bool       `json:"email_notifications"`
	ThresholdAlerts    bool       `json:"threshold_alerts"`
	LastLoginAt        *time.Time `json:"last_login_at"`
	CreatedAt          time.Time  `json:"created_at"`
}

// UpdateProfileRequest represents the request body for PATCH /me.
type UpdateProfileRequest struct {
	Name               *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	ThresholdAlerts    *bool   `json:"threshold_alerts,omitempty"`
}

// DeleteAccountRequest represents the request body for account deletion.
type DeleteAccountRequest struct {
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                 user.ID.String(),
		Email:              user.Email,
		Name:               user.Name,
		EmailNotifications: user.EmailNotifications,
		ThresholdAlerts:    user.ThresholdAlerts,
		LastLoginAt:        user.LastLoginAt,
		CreatedAt:          user.CreatedAt,
	}
}

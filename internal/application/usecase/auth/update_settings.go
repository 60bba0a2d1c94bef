package auth

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// MaxNameLength is the maximum allowed length for a user's display name.
const MaxNameLength = 100

// UpdateSettingsInput represents a partial update of the user's profile.
type UpdateSettingsInput struct {
	UserID             uuid.UUID
	Name               *string // Optional
	EmailNotifications *bool   // Optional
	ThresholdAlerts    *bool   // Optional
}

// UpdateSettingsOutput represents the updated user.
type UpdateSettingsOutput struct {
	User *entity.User
}

// UpdateSettingsUseCase updates the name and notification preferences.
type UpdateSettingsUseCase struct {
	users adapter.UserRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(users adapter.UserRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{users: users}
}

// Execute applies the provided fields and leaves the others untouched.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	user, err := findUser(ctx, uc.users, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeMissingFields,
				fmt.Sprintf("name must have 1 to %d characters", MaxNameLength),
				nil,
			)
		}
		user.Name = name
	}
	if input.EmailNotifications != nil {
		user.EmailNotifications = *input.EmailNotifications
	}
	if input.ThresholdAlerts != nil {
		user.ThresholdAlerts = *input.ThresholdAlerts
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateSettingsOutput{User: user}, nil
}

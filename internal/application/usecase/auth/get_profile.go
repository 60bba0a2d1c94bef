package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// GetProfileInput represents the input for reading the current user.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the current user.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase loads the authenticated user's profile.
type GetProfileUseCase struct {
	users adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(users adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{users: users}
}

// Execute returns the user's profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := findUser(ctx, uc.users, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{User: user}, nil
}

func findUser(ctx context.Context, repo adapter.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

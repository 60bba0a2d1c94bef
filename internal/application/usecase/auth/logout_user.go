package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout. UserID is set when
// the request carried a valid access token.
type LogoutUserInput struct {
	RefreshToken string
	UserID       uuid.UUID
	AllDevices   bool
}

// LogoutUserUseCase ends one session, or all of them.
type LogoutUserUseCase struct {
	tokens adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokens adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{tokens: tokens}
}

// Execute never fails from the client's point of view; storage errors are logged.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) {
	if input.AllDevices && input.UserID != uuid.Nil {
		if err := uc.tokens.RevokeAll(ctx, input.UserID); err != nil {
			slog.Warn("Failed to revoke sessions", "user_id", input.UserID, "error", err)
		}
		return
	}
	if input.RefreshToken == "" {
		return
	}
	if err := uc.tokens.Revoke(ctx, input.RefreshToken); err != nil {
		slog.Warn("Failed to revoke session", "error", err)
	}
}

package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID       uuid.UUID
	Password     string
	Confirmation string
}

// DeleteAccountUseCase removes the account, everything it owns and its sessions.
type DeleteAccountUseCase struct {
	users     adapter.UserRepository
	passwords adapter.PasswordService
	tokens    adapter.TokenService
	cache     adapter.SummaryCache
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	users adapter.UserRepository,
	passwords adapter.PasswordService,
	tokens adapter.TokenService,
	cache adapter.SummaryCache,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{users: users, passwords: passwords, tokens: tokens, cache: cache}
}

// Execute requires the current password. Confirmation is optional but must
// read DELETE when sent.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if input.Confirmation != "" && input.Confirmation != "DELETE" {
		return domainerror.NewAuthError(domainerror.ErrCodeInvalidConfirmation, "confirmation must be exactly 'DELETE'", nil)
	}

	user, err := findUser(ctx, uc.users, input.UserID)
	if err != nil {
		return err
	}
	if err := uc.passwords.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, "invalid password", domainerror.ErrInvalidCredentials)
	}

	if err := uc.tokens.RevokeAll(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	if err := uc.users.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if err := uc.cache.InvalidateUser(ctx, user.ID); err != nil {
		slog.Warn("Failed to invalidate cached summaries", "user_id", user.ID, "error", err)
	}

	slog.Info("Account deleted", "user_id", user.ID)
	return nil
}

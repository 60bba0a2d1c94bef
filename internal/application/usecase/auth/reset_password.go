package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordUseCase redeems a reset grant, replaces the password and
// signs out every device.
type ResetPasswordUseCase struct {
	users     adapter.UserRepository
	passwords adapter.PasswordService
	tokens    adapter.TokenService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(users adapter.UserRepository, passwords adapter.PasswordService, tokens adapter.TokenService) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{users: users, passwords: passwords, tokens: tokens}
}

// Execute checks the new password before redeeming, so a weak password does
// not burn the grant.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) error {
	if err := checkPassword(uc.passwords, input.NewPassword); err != nil {
		return err
	}

	userID, err := uc.tokens.RedeemResetToken(ctx, input.Token)
	if errors.Is(err, domainerror.ErrInvalidResetToken) {
		return domainerror.NewAuthError(domainerror.ErrCodeInvalidResetToken, "invalid or expired password reset token", err)
	}
	if err != nil {
		return fmt.Errorf("failed to redeem reset token: %w", err)
	}

	user, err := findUser(ctx, uc.users, userID)
	if err != nil {
		return err
	}

	hash, err := uc.passwords.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if err := uc.users.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}

	if err := uc.tokens.RevokeAll(ctx, user.ID); err != nil {
		slog.Warn("Failed to revoke sessions after password reset", "user_id", user.ID, "error", err)
	}
	slog.Info("Password reset", "user_id", user.ID)
	return nil
}

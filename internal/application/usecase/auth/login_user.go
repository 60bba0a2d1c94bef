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

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginUserUseCase checks credentials and opens a session.
type LoginUserUseCase struct {
	users     adapter.UserRepository
	passwords adapter.PasswordService
	tokens    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(users adapter.UserRepository, passwords adapter.PasswordService, tokens adapter.TokenService) *LoginUserUseCase {
	return &LoginUserUseCase{users: users, passwords: passwords, tokens: tokens}
}

// Execute signs the user in. Unknown emails and wrong passwords fail alike.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*SessionOutput, error) {
	user, err := uc.users.FindByEmail(ctx, input.Email)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, domainerror.InvalidCredentials()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if err := uc.passwords.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.InvalidCredentials()
	}

	now := time.Now().UTC()
	if err := uc.users.RecordLogin(ctx, user.ID, now); err != nil {
		slog.Warn("Failed to record login", "user_id", user.ID, "error", err)
	} else {
		user.LastLoginAt = &now
	}

	tokens, err := uc.tokens.Issue(ctx, user, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	return newSessionOutput(tokens, user), nil
}

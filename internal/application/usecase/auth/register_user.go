package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email         string
	Name          string
	Password      string
	TermsAccepted bool
}

// RegisterUserUseCase creates an account, seeds its default categories and
// thresholds, and signs the user in.
type RegisterUserUseCase struct {
	users      adapter.UserRepository
	categories adapter.CategoryRepository
	thresholds adapter.ThresholdRepository
	passwords  adapter.PasswordService
	tokens     adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	users adapter.UserRepository,
	categories adapter.CategoryRepository,
	thresholds adapter.ThresholdRepository,
	passwords adapter.PasswordService,
	tokens adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		users:      users,
		categories: categories,
		thresholds: thresholds,
		passwords:  passwords,
		tokens:     tokens,
	}
}

// Execute registers the user and opens their first session.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*SessionOutput, error) {
	if !input.TermsAccepted {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeTermsNotAccepted, "terms of service must be accepted", domainerror.ErrTermsNotAccepted)
	}

	email := entity.NormalizeEmail(input.Email)
	if !validEmail(email) {
		return nil, invalidEmail()
	}
	if err := checkPassword(uc.passwords, input.Password); err != nil {
		return nil, err
	}

	taken, err := uc.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if taken {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already exists", domainerror.ErrEmailAlreadyExists)
	}

	hash, err := uc.passwords.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(email, input.Name, hash, time.Now().UTC())
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	uc.seedDefaults(ctx, user)

	tokens, err := uc.tokens.Issue(ctx, user, false)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	slog.Info("User registered", "user_id", user.ID)
	return newSessionOutput(tokens, user), nil
}

// seedDefaults stores the starter categories and thresholds. Failures are
// logged; the account stays usable and the user can create them by hand.
func (uc *RegisterUserUseCase) seedDefaults(ctx context.Context, user *entity.User) {
	categories := append(entity.DefaultExpenseCategories(user.ID), entity.DefaultIncomeCategories(user.ID)...)
	if err := uc.categories.CreateMany(ctx, categories); err != nil {
		slog.Warn("Failed to seed default categories", "user_id", user.ID, "error", err)
	}
	if err := uc.thresholds.Replace(ctx, user.ID, entity.DefaultThresholds()); err != nil {
		slog.Warn("Failed to seed default thresholds", "user_id", user.ID, "error", err)
	}
}

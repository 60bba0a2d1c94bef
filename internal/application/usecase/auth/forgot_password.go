package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// ForgotPasswordMessage is returned whether or not the email belongs to an account.
const ForgotPasswordMessage = "If an account with that email exists, we have sent a password reset link"

// ForgotPasswordInput represents the input for forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordUseCase issues a reset grant and queues the email carrying it.
type ForgotPasswordUseCase struct {
	users      adapter.UserRepository
	tokens     adapter.TokenService
	emails     adapter.EmailService // nil logs the link instead
	appBaseURL string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(users adapter.UserRepository, tokens adapter.TokenService, emails adapter.EmailService, appBaseURL string) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		users:      users,
		tokens:     tokens,
		emails:     emails,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// Execute only fails on a malformed email. Every other outcome, including an
// unknown account, reports success so accounts cannot be enumerated.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) error {
	email := entity.NormalizeEmail(input.Email)
	if !validEmail(email) {
		return invalidEmail()
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			slog.Error("Failed to look up user for password reset", "error", err)
		}
		return nil
	}

	grant, err := uc.tokens.IssueResetToken(ctx, user.ID)
	if err != nil {
		slog.Error("Failed to issue reset token", "user_id", user.ID, "error", err)
		return nil
	}

	link := uc.appBaseURL + "/reset-password?" + url.Values{"token": {grant.Token}}.Encode()
	if uc.emails == nil {
		slog.Info("Password reset link (email disabled)", "user_id", user.ID, "url", link)
		return nil
	}

	err = uc.emails.QueuePasswordResetEmail(ctx, adapter.QueuePasswordResetInput{
		UserID:    user.ID.String(),
		UserEmail: user.Email,
		UserName:  user.Name,
		ResetURL:  link,
		ExpiresIn: humanizeValidity(time.Until(grant.ExpiresAt)),
	})
	if err != nil {
		slog.Error("Failed to queue password reset email", "user_id", user.ID, "error", err)
	}
	return nil
}

// humanizeValidity renders a lifetime for the pt-BR email body.
func humanizeValidity(d time.Duration) string {
	minutes := int(d.Round(time.Minute).Minutes())
	switch {
	case minutes >= 120 && minutes%60 == 0:
		return fmt.Sprintf("%d horas", minutes/60)
	case minutes == 60:
		return "1 hora"
	case minutes <= 1:
		return "1 minuto"
	default:
		return fmt.Sprintf("%d minutos", minutes)
	}
}

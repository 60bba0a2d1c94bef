// Package auth contains account and session use cases.
package auth

import (
	"net/mail"
	"strings"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// SessionOutput is returned by every flow that opens or renews a session.
// User is nil after a refresh.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         *entity.User
}

func newSessionOutput(tokens *adapter.IssuedTokens, user *entity.User) *SessionOutput {
	return &SessionOutput{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.AccessExpiresAt,
		User:         user,
	}
}

// validEmail accepts a bare address with a dotted domain.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	domain := email[strings.LastIndexByte(email, '@')+1:]
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}

func invalidEmail() *domainerror.AuthError {
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidEmail, "invalid email format", domainerror.ErrInvalidEmail)
}

// checkPassword turns unmet strength rules into a weak password error.
func checkPassword(passwords adapter.PasswordService, password string) error {
	problems := passwords.CheckStrength(password)
	if len(problems) == 0 {
		return nil
	}
	return domainerror.NewAuthError(
		domainerror.ErrCodeWeakPassword,
		"password needs "+strings.Join(problems, ", "),
		domainerror.ErrWeakPassword,
	)
}

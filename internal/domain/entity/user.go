// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents an account owning expenses, incomes and settings.
type User struct {
	ID                 uuid.UUID
	Email              string // Stored normalized, see NormalizeEmail
	Name               string
	PasswordHash       string
	EmailNotifications bool
	ThresholdAlerts    bool // Receive an email when a category crosses its threshold
	TermsAcceptedAt    time.Time
	LastLoginAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates an account with every notification enabled.
// An empty name falls back to the local part of the email.
func NewUser(email, name, passwordHash string, termsAcceptedAt time.Time) *User {
	now := time.Now().UTC()
	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		EmailNotifications: true,
		ThresholdAlerts:    true,
		TermsAcceptedAt:    termsAcceptedAt,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// NormalizeEmail trims and lower-cases an address so lookups are case insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// WantsThresholdAlerts reports whether alert emails may be sent to the user.
func (u *User) WantsThresholdAlerts() bool {
	return u.EmailNotifications && u.ThresholdAlerts
}

package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// IssuedTokens is what a client receives after login, registration or rotation.
type IssuedTokens struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// AccessClaims identifies the caller of an authenticated request.
type AccessClaims struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	ExpiresAt time.Time
}

// ResetGrant is a freshly issued password reset token. Token is only ever
// available here; storage keeps its digest.
type ResetGrant struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService issues stateless access tokens backed by stateful, single
// use refresh sessions.
type TokenService interface {
	// Issue opens a session for user and returns both tokens.
	Issue(ctx context.Context, user *entity.User, remember bool) (*IssuedTokens, error)

	// ParseAccessToken verifies an access token without touching storage.
	ParseAccessToken(token string) (*AccessClaims, error)

	// Rotate trades a refresh token for a new pair. Presenting a token that
	// was already rotated revokes every session of its owner.
	Rotate(ctx context.Context, refreshToken string) (*IssuedTokens, error)

	// Revoke ends the session of a refresh token. Unknown tokens are ignored.
	Revoke(ctx context.Context, refreshToken string) error

	// RevokeAll ends every session of the user.
	RevokeAll(ctx context.Context, userID uuid.UUID) error

	// IssueResetToken creates a password reset grant for the user.
	IssueResetToken(ctx context.Context, userID uuid.UUID) (*ResetGrant, error)

	// RedeemResetToken consumes a reset token and returns its user.
	RedeemResetToken(ctx context.Context, token string) (uuid.UUID, error)
}

package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Session is the server side record of a refresh token. Only the SHA-256
// digest of the token is kept. A session is single use: rotating it
// revokes it and opens a new one. RotatedAt tells a rotated session apart
// from one ended by logout, so a replayed token can be recognised.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	Remember  bool
	ExpiresAt time.Time
	RevokedAt *time.Time
	RotatedAt *time.Time
	CreatedAt time.Time
}

// NewSession opens a session for the given token digest.
func NewSession(userID uuid.UUID, tokenHash string, remember bool, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: tokenHash,
		Remember:  remember,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// Active reports whether the session can still be rotated at now.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// PasswordReset is a single use grant to choose a new password.
type PasswordReset struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// NewPasswordReset creates a reset grant valid for ttl.
func NewPasswordReset(userID uuid.UUID, tokenHash string, ttl time.Duration) *PasswordReset {
	now := time.Now().UTC()
	return &PasswordReset{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

// HashToken returns the hex SHA-256 digest stored in place of a bearer secret.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// SessionRepository stores refresh sessions and password reset grants by token digest.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error

	// FindByHash returns the session whatever its state, or ErrSessionNotFound.
	FindByHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// Consume atomically revokes the active session with tokenHash and
	// returns it. It fails with ErrSessionNotFound when no active session matches.
	Consume(ctx context.Context, tokenHash string, now time.Time) (*entity.Session, error)

	Revoke(ctx context.Context, tokenHash string, now time.Time) error
	RevokeAll(ctx context.Context, userID uuid.UUID, now time.Time) error

	// PurgeExpired deletes sessions and reset grants that expired before cutoff.
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)

	CreateReset(ctx context.Context, reset *entity.PasswordReset) error

	// ConsumeReset marks the unused, unexpired grant as used and returns it,
	// or fails with ErrInvalidResetToken.
	ConsumeReset(ctx context.Context, tokenHash string, now time.Time) (*entity.PasswordReset, error)
}

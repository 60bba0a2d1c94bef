package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a repository for refresh sessions and reset grants.
func NewSessionRepository(db *gorm.DB) adapter.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return r.db.WithContext(ctx).Create(model.SessionFromEntity(session)).Error
}

func (r *sessionRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var m model.SessionModel
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return m.ToEntity(), nil
}

// Consume uses a conditional update so two concurrent rotations of the
// same token cannot both succeed.
func (r *sessionRepository) Consume(ctx context.Context, tokenHash string, now time.Time) (*entity.Session, error) {
	var consumed *entity.Session
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.SessionModel
		err := tx.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", tokenHash, now).First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerror.ErrSessionNotFound
		}
		if err != nil {
			return err
		}

		result := tx.Model(&model.SessionModel{}).
			Where("id = ? AND revoked_at IS NULL", m.ID).
			Updates(map[string]any{"revoked_at": now, "rotated_at": now})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrSessionNotFound
		}

		m.RevokedAt, m.RotatedAt = &now, &now
		consumed = m.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return consumed, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, tokenHash string, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", tokenHash).
		Update("revoked_at", now).Error
}

func (r *sessionRepository) RevokeAll(ctx context.Context, userID uuid.UUID, now time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

func (r *sessionRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	var purged int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sessions := tx.Where("expires_at < ?", cutoff).Delete(&model.SessionModel{})
		if sessions.Error != nil {
			return fmt.Errorf("failed to purge sessions: %w", sessions.Error)
		}
		resets := tx.Where("expires_at < ?", cutoff).Delete(&model.PasswordResetModel{})
		if resets.Error != nil {
			return fmt.Errorf("failed to purge password resets: %w", resets.Error)
		}
		purged = sessions.RowsAffected + resets.RowsAffected
		return nil
	})
	return purged, err
}

func (r *sessionRepository) CreateReset(ctx context.Context, reset *entity.PasswordReset) error {
	return r.db.WithContext(ctx).Create(model.PasswordResetFromEntity(reset)).Error
}

func (r *sessionRepository) ConsumeReset(ctx context.Context, tokenHash string, now time.Time) (*entity.PasswordReset, error) {
	var consumed *entity.PasswordReset
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m model.PasswordResetModel
		err := tx.Where("token_hash = ? AND used_at IS NULL AND expires_at > ?", tokenHash, now).First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerror.ErrInvalidResetToken
		}
		if err != nil {
			return err
		}

		result := tx.Model(&model.PasswordResetModel{}).
			Where("id = ? AND used_at IS NULL", m.ID).
			Update("used_at", now)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrInvalidResetToken
		}

		m.UsedAt = &now
		consumed = m.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return consumed, nil
}

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// SessionModel is a refresh session. TokenHash is the SHA-256 of the refresh token.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	Remember  bool      `gorm:"not null;default:false"`
	ExpiresAt time.Time `gorm:"not null;index"`
	RevokedAt *time.Time
	RotatedAt *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		Remember:  m.Remember,
		ExpiresAt: m.ExpiresAt.UTC(),
		RevokedAt: m.RevokedAt,
		RotatedAt: m.RotatedAt,
		CreatedAt: m.CreatedAt,
	}
}

func SessionFromEntity(s *entity.Session) *SessionModel {
	return &SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		TokenHash: s.TokenHash,
		Remember:  s.Remember,
		ExpiresAt: s.ExpiresAt,
		RevokedAt: s.RevokedAt,
		RotatedAt: s.RotatedAt,
		CreatedAt: s.CreatedAt,
	}
}

// PasswordResetModel is a password reset grant keyed by token digest.
type PasswordResetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	UsedAt    *time.Time
	CreatedAt time.Time `gorm:"not null"`
}

func (PasswordResetModel) TableName() string {
	return "password_resets"
}

func (m *PasswordResetModel) ToEntity() *entity.PasswordReset {
	return &entity.PasswordReset{
		ID:        m.ID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		ExpiresAt: m.ExpiresAt.UTC(),
		UsedAt:    m.UsedAt,
		CreatedAt: m.CreatedAt,
	}
}

func PasswordResetFromEntity(r *entity.PasswordReset) *PasswordResetModel {
	return &PasswordResetModel{
		ID:        r.ID,
		UserID:    r.UserID,
		TokenHash: r.TokenHash,
		ExpiresAt: r.ExpiresAt,
		UsedAt:    r.UsedAt,
		CreatedAt: r.CreatedAt,
	}
}

package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// EmailQueueModel is a row of the email outbox. Payload holds JSON text.
type EmailQueueModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind        string    `gorm:"type:varchar(50);not null"`
	ToAddress   string    `gorm:"type:varchar(255);not null"`
	ToName      string    `gorm:"type:varchar(255)"`
	Subject     string    `gorm:"type:varchar(500);not null"`
	Payload     string    `gorm:"type:text;not null"`
	State       string    `gorm:"type:varchar(20);not null;index:idx_email_queue_due,priority:1"`
	Attempts    int       `gorm:"not null;default:0"`
	MaxAttempts int       `gorm:"not null"`
	LastError   string    `gorm:"type:text"`
	ProviderID  string    `gorm:"type:varchar(100)"`
	NotBefore   time.Time `gorm:"not null;index:idx_email_queue_due,priority:2"`
	LeasedUntil *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	FinishedAt  *time.Time
}

func (EmailQueueModel) TableName() string {
	return "email_queue"
}

func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	return &entity.EmailJob{
		ID:          m.ID,
		Kind:        entity.EmailKind(m.Kind),
		To:          m.ToAddress,
		ToName:      m.ToName,
		Subject:     m.Subject,
		Payload:     []byte(m.Payload),
		State:       entity.EmailState(m.State),
		Attempts:    m.Attempts,
		MaxAttempts: m.MaxAttempts,
		LastError:   m.LastError,
		ProviderID:  m.ProviderID,
		NotBefore:   m.NotBefore.UTC(),
		LeasedUntil: m.LeasedUntil,
		CreatedAt:   m.CreatedAt,
		FinishedAt:  m.FinishedAt,
	}
}

func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	return &EmailQueueModel{
		ID:          job.ID,
		Kind:        string(job.Kind),
		ToAddress:   job.To,
		ToName:      job.ToName,
		Subject:     job.Subject,
		Payload:     string(job.Payload),
		State:       string(job.State),
		Attempts:    job.Attempts,
		MaxAttempts: job.MaxAttempts,
		LastError:   job.LastError,
		ProviderID:  job.ProviderID,
		NotBefore:   job.NotBefore,
		LeasedUntil: job.LeasedUntil,
		CreatedAt:   job.CreatedAt,
		FinishedAt:  job.FinishedAt,
	}
}

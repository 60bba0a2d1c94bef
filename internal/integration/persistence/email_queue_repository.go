package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates the outbox repository.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{db: db}
}

func (r *emailQueueRepository) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	if err := r.db.WithContext(ctx).Create(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return fmt.Errorf("failed to enqueue %s email: %w", job.Kind, err)
	}
	return nil
}

// claimable matches pending jobs that are due and sending jobs whose lease expired.
func claimable(q *gorm.DB, now time.Time) *gorm.DB {
	return q.Where(
		"(state = ? AND not_before <= ?) OR (state = ? AND leased_until < ?)",
		entity.EmailPending, now, entity.EmailSending, now,
	)
}

// Claim selects candidates and leases them with a guarded update, so two
// workers never hold the same job. On Postgres the select also skips rows
// locked by a concurrent claim.
func (r *emailQueueRepository) Claim(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*entity.EmailJob, error) {
	var claimed []model.EmailQueueModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := claimable(tx.Model(&model.EmailQueueModel{}), now).Order("not_before").Limit(limit)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"})
		}

		var ids []uuid.UUID
		if err := q.Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		until := now.Add(lease)
		update := claimable(tx.Model(&model.EmailQueueModel{}).Where("id IN ?", ids), now).
			Updates(map[string]any{"state": entity.EmailSending, "leased_until": until})
		if update.Error != nil {
			return update.Error
		}

		return tx.Where("id IN ? AND state = ? AND leased_until = ?", ids, entity.EmailSending, until).
			Order("not_before").
			Find(&claimed).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to claim email jobs: %w", err)
	}

	jobs := make([]*entity.EmailJob, len(claimed))
	for i := range claimed {
		jobs[i] = claimed[i].ToEntity()
	}
	return jobs, nil
}

func (r *emailQueueRepository) Settle(ctx context.Context, job *entity.EmailJob) error {
	return r.db.WithContext(ctx).Save(model.EmailQueueModelFromEntity(job)).Error
}

func (r *emailQueueRepository) PurgeSent(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("state = ? AND finished_at < ?", entity.EmailSent, cutoff).
		Delete(&model.EmailQueueModel{})
	return result.RowsAffected, result.Error
}

package adapter

import (
	"context"
	"time"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// EmailQueueRepository is the persistent email outbox.
type EmailQueueRepository interface {
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// Claim leases up to limit due jobs until now+lease and marks them
	// sending. Jobs whose lease ran out are claimable again.
	Claim(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*entity.EmailJob, error)

	// Settle stores the outcome of a claimed job and releases its lease.
	Settle(ctx context.Context, job *entity.EmailJob) error

	// PurgeSent deletes sent jobs finished before cutoff.
	PurgeSent(ctx context.Context, cutoff time.Time) (int64, error)
}

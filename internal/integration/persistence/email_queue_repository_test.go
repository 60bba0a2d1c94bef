package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

func enqueueReset(t *testing.T, repo adapter.EmailQueueRepository, to string, at time.Time) *entity.EmailJob {
	t.Helper()
	job, err := entity.NewEmailJob(entity.EmailPasswordReset, to, "", "Reset", entity.PasswordResetEmail{ResetURL: "https://x/reset"}, at)
	require.NoError(t, err)
	require.NoError(t, repo.Enqueue(context.Background(), job))
	return job
}

func TestEmailQueueClaimLeasesDueJobs(t *testing.T) {
	ctx := context.Background()
	repo := NewEmailQueueRepository(newTestDB(t))
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	first := enqueueReset(t, repo, "a@example.com", now.Add(-2*time.Minute))
	enqueueReset(t, repo, "b@example.com", now.Add(-time.Minute))
	enqueueReset(t, repo, "later@example.com", now.Add(time.Hour))

	jobs, err := repo.Claim(ctx, now, time.Minute, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, first.ID, jobs[0].ID, "oldest first")
	for _, j := range jobs {
		assert.Equal(t, entity.EmailSending, j.State)
		require.NotNil(t, j.LeasedUntil)
		assert.True(t, j.LeasedUntil.Equal(now.Add(time.Minute)))
	}

	again, err := repo.Claim(ctx, now.Add(30*time.Second), time.Minute, 10)
	require.NoError(t, err)
	assert.Empty(t, again, "leased jobs are hidden")

	expired, err := repo.Claim(ctx, now.Add(2*time.Minute), time.Minute, 1)
	require.NoError(t, err)
	assert.Len(t, expired, 1, "an expired lease is claimable and the limit applies")
}

func TestEmailQueueSettleAndPurge(t *testing.T) {
	ctx := context.Background()
	repo := NewEmailQueueRepository(newTestDB(t))
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	sent := enqueueReset(t, repo, "sent@example.com", now)
	retry := enqueueReset(t, repo, "retry@example.com", now)

	jobs, err := repo.Claim(ctx, now, time.Minute, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, j := range jobs {
		if j.ID == sent.ID {
			j.Delivered("msg-1", now)
		} else {
			j.Failed(errors.New("503"), false, now)
		}
		require.NoError(t, repo.Settle(ctx, j))
	}

	jobs, err = repo.Claim(ctx, now.Add(30*time.Second), time.Minute, 10)
	require.NoError(t, err)
	assert.Empty(t, jobs, "retry waits for its backoff")

	jobs, err = repo.Claim(ctx, now.Add(time.Minute), time.Minute, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, retry.ID, jobs[0].ID)
	assert.Equal(t, 1, jobs[0].Attempts)
	assert.Equal(t, "503", jobs[0].LastError)

	purged, err := repo.PurgeSent(ctx, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)
}

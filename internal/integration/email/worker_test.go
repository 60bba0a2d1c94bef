package email

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/email/templates"
)

// memoryQueue keeps copies of jobs so the worker only sees what it settles.
type memoryQueue struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]entity.EmailJob
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{jobs: make(map[uuid.UUID]entity.EmailJob)}
}

func (q *memoryQueue) Enqueue(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs[job.ID] = *job
	return nil
}

func (q *memoryQueue) Claim(_ context.Context, now time.Time, lease time.Duration, limit int) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var out []*entity.EmailJob
	for id, j := range q.jobs {
		due := j.State == entity.EmailPending && !j.NotBefore.After(now)
		expired := j.State == entity.EmailSending && j.LeasedUntil.Before(now)
		if (!due && !expired) || len(out) == limit {
			continue
		}
		until := now.Add(lease)
		j.State = entity.EmailSending
		j.LeasedUntil = &until
		q.jobs[id] = j
		claimed := j
		out = append(out, &claimed)
	}
	return out, nil
}

func (q *memoryQueue) Settle(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs[job.ID] = *job
	return nil
}

func (q *memoryQueue) PurgeSent(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (q *memoryQueue) only(t *testing.T) entity.EmailJob {
	t.Helper()
	q.mu.Lock()
	defer q.mu.Unlock()
	require.Len(t, q.jobs, 1)
	for _, j := range q.jobs {
		return j
	}
	return entity.EmailJob{}
}

// fakeSender records deliveries and fails while err is set.
type fakeSender struct {
	mu   sync.Mutex
	sent []adapter.OutgoingEmail
	err  error
}

func (s *fakeSender) Send(_ context.Context, email adapter.OutgoingEmail) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.sent = append(s.sent, email)
	return fmt.Sprintf("msg-%d", len(s.sent)), nil
}

func (s *fakeSender) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func newTestWorker(t *testing.T, queue adapter.EmailQueueRepository, sender adapter.EmailSender, now time.Time) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)
	w := NewWorker(queue, sender, renderer, DefaultWorkerConfig())
	w.now = func() time.Time { return now }
	return w
}

func queueReset(t *testing.T, queue adapter.EmailQueueRepository, to string) {
	t.Helper()
	require.NoError(t, NewService(queue, "").QueuePasswordResetEmail(context.Background(), adapter.QueuePasswordResetInput{
		UserEmail: to,
		UserName:  "Bob",
		ResetURL:  "https://app.example.com/reset?token=abc",
		ExpiresIn: "1 hora",
	}))
}

func TestWorkerSendsThresholdAlert(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueue()
	sender := &fakeSender{}

	err := NewService(queue, "https://app.example.com").QueueThresholdAlertEmail(ctx, adapter.QueueThresholdAlertInput{
		UserEmail: "ana@example.com",
		UserName:  "Ana",
		Period:    "2025-03",
		Alerts: []entity.ThresholdAlertRow{
			{Category: "alimentação", Total: "600.00", Limit: "500.00", Excess: "100.00", Percent: "120"},
		},
	})
	require.NoError(t, err)

	newTestWorker(t, queue, sender, time.Now().UTC()).ProcessNow(ctx)

	require.Len(t, sender.sent, 1)
	sent := sender.sent[0]
	assert.Equal(t, entity.EmailThresholdAlert, sent.Kind)
	assert.Equal(t, "ana@example.com", sent.To)
	assert.Contains(t, sent.Subject, "alimentação")
	assert.Contains(t, sent.HTML, "R$ 100.00")
	assert.Contains(t, sent.Text, "alimentação: R$ 600.00 de R$ 500.00")
	assert.Contains(t, sent.HTML, "https://app.example.com/dashboard?period=2025-03")

	job := queue.only(t)
	assert.Equal(t, entity.EmailSent, job.State)
	assert.Equal(t, "msg-1", job.ProviderID)
	assert.Equal(t, 1, job.Attempts)
	assert.NotNil(t, job.FinishedAt)
	assert.Nil(t, job.LeasedUntil)
}

func TestServiceSkipsEmptyAlertList(t *testing.T) {
	queue := newMemoryQueue()
	err := NewService(queue, "").QueueThresholdAlertEmail(context.Background(), adapter.QueueThresholdAlertInput{UserEmail: "a@b.com"})
	require.NoError(t, err)
	assert.Empty(t, queue.jobs)
}

func TestWorkerRetriesDeferredFailures(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueue()
	sender := &fakeSender{}
	sender.fail(fmt.Errorf("%w: 503 service unavailable", domainerror.ErrEmailDeferred))
	queueReset(t, queue, "bob@example.com")

	start := time.Now().UTC().Add(time.Second)
	worker := newTestWorker(t, queue, sender, start)
	worker.ProcessNow(ctx)

	job := queue.only(t)
	assert.Equal(t, entity.EmailPending, job.State)
	assert.Equal(t, 1, job.Attempts)
	assert.Equal(t, start.Add(time.Minute), job.NotBefore)
	assert.Contains(t, job.LastError, "503")

	// Not due yet, so another pass leaves it alone.
	worker.ProcessNow(ctx)
	assert.Equal(t, 1, queue.only(t).Attempts)

	sender.fail(nil)
	worker.now = func() time.Time { return job.NotBefore }
	worker.ProcessNow(ctx)

	job = queue.only(t)
	assert.Equal(t, entity.EmailSent, job.State)
	assert.Equal(t, 2, job.Attempts)
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Text, "https://app.example.com/reset?token=abc")
}

func TestWorkerGivesUp(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		passes   int
		attempts int
	}{
		{name: "rejected", err: fmt.Errorf("%w: 422 validation error", domainerror.ErrEmailRejected), passes: 1, attempts: 1},
		{name: "attempts exhausted", err: errors.New("connection reset"), passes: entity.DefaultEmailAttempts, attempts: entity.DefaultEmailAttempts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			queue := newMemoryQueue()
			sender := &fakeSender{err: tt.err}
			queueReset(t, queue, "carol@example.com")

			now := time.Now().UTC().Add(time.Second)
			worker := newTestWorker(t, queue, sender, now)
			for i := 0; i < tt.passes; i++ {
				worker.ProcessNow(ctx)
				now = now.Add(time.Hour)
				worker.now = func() time.Time { return now }
			}

			job := queue.only(t)
			assert.Equal(t, entity.EmailDead, job.State)
			assert.Equal(t, tt.attempts, job.Attempts)
			assert.NotNil(t, job.FinishedAt)
		})
	}
}

func TestWorkerDropsUnknownKind(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueue()
	sender := &fakeSender{}
	job, err := entity.NewEmailJob("newsletter", "dan@example.com", "", "hi", struct{}{}, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, queue.Enqueue(ctx, job))

	newTestWorker(t, queue, sender, time.Now().UTC().Add(time.Second)).ProcessNow(ctx)

	got := queue.only(t)
	assert.Equal(t, entity.EmailDead, got.State)
	assert.Contains(t, got.LastError, domainerror.ErrUnknownEmailKind.Error())
	assert.Empty(t, sender.sent)
}

func TestWorkerReclaimsExpiredLease(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueue()
	sender := &fakeSender{}
	queueReset(t, queue, "eve@example.com")

	now := time.Now().UTC().Add(time.Second)
	claimed, err := queue.Claim(ctx, now, time.Minute, 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	worker := newTestWorker(t, queue, sender, now.Add(30*time.Second))
	worker.ProcessNow(ctx)
	assert.Empty(t, sender.sent, "lease still held")

	worker.now = func() time.Time { return now.Add(2 * time.Minute) }
	worker.ProcessNow(ctx)
	assert.Len(t, sender.sent, 1)
}

func TestWorkerSendsBatchConcurrently(t *testing.T) {
	ctx := context.Background()
	queue := newMemoryQueue()
	sender := &fakeSender{}
	for i := 0; i < 8; i++ {
		queueReset(t, queue, fmt.Sprintf("user%d@example.com", i))
	}

	newTestWorker(t, queue, sender, time.Now().UTC().Add(time.Second)).ProcessNow(ctx)

	var to []string
	for _, s := range sender.sent {
		to = append(to, s.To)
	}
	sort.Strings(to)
	assert.Len(t, to, 8)
	assert.Equal(t, "user0@example.com", to[0])
}

func TestClassifyResendError(t *testing.T) {
	tests := []struct {
		msg  string
		want error
	}{
		{"[ERROR]: 422 The `to` field is invalid", domainerror.ErrEmailRejected},
		{"[ERROR]: 403 domain is not verified", domainerror.ErrEmailRejected},
		{"[ERROR]: 429 Too many requests", domainerror.ErrEmailDeferred},
		{"[ERROR]: 500 internal server error", domainerror.ErrEmailDeferred},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.ErrorIs(t, classifyResendError(errors.New(tt.msg)), tt.want)
		})
	}
}

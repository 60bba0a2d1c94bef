package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/email/templates"
)

// WorkerConfig tunes the outbox worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Concurrency  int
	// Lease is how long a claimed job stays invisible to other workers.
	Lease time.Duration
	// Retention is how long sent jobs are kept. Zero keeps them forever.
	Retention time.Duration
}

func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
		Concurrency:  4,
		Lease:        2 * time.Minute,
		Retention:    7 * 24 * time.Hour,
	}
}

// Worker drains the outbox. Several workers may share one database: a job is
// only sent by the worker holding its lease.
type Worker struct {
	queue    adapter.EmailQueueRepository
	sender   adapter.EmailSender
	renderer *templates.Renderer
	cfg      WorkerConfig
	now      func() time.Time
}

func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, cfg WorkerConfig) *Worker {
	def := DefaultWorkerConfig()
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	if cfg.Lease <= 0 {
		cfg.Lease = def.Lease
	}
	return &Worker{
		queue:    queue,
		sender:   sender,
		renderer: renderer,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start polls the outbox until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.cfg.PollInterval,
		"batch_size", w.cfg.BatchSize,
		"concurrency", w.cfg.Concurrency,
	)

	poll := time.NewTicker(w.cfg.PollInterval)
	defer poll.Stop()
	purge := time.NewTicker(time.Hour)
	defer purge.Stop()

	w.drain(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker stopped")
			return
		case <-poll.C:
			w.drain(ctx)
		case <-purge.C:
			w.purgeSent(ctx)
		}
	}
}

// ProcessNow runs one claim and send cycle.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.drain(ctx)
}

func (w *Worker) drain(ctx context.Context) {
	jobs, err := w.queue.Claim(ctx, w.now(), w.cfg.Lease, w.cfg.BatchSize)
	if err != nil {
		slog.Error("Failed to claim email jobs", "error", err)
		return
	}
	if len(jobs) == 0 {
		return
	}
	slog.Debug("Claimed email jobs", "count", len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.Concurrency)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			w.deliver(gctx, job)
			return nil
		})
	}
	_ = g.Wait()
}

func (w *Worker) deliver(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With("job_id", job.ID, "kind", job.Kind, "attempt", job.Attempts+1)

	html, text, err := w.renderer.Render(job)
	if err != nil {
		job.Failed(err, true, w.now())
		logger.Error("Email cannot be rendered", "error", err)
		w.settle(ctx, logger, job)
		return
	}

	id, err := w.sender.Send(ctx, adapter.OutgoingEmail{
		Kind:    job.Kind,
		To:      job.To,
		Name:    job.ToName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	switch {
	case err == nil:
		job.Delivered(id, w.now())
		logger.Info("Email sent", "provider_id", id)
	case errors.Is(err, domainerror.ErrEmailRejected):
		job.Failed(err, true, w.now())
		logger.Warn("Email rejected", "error", err)
	default:
		job.Failed(err, false, w.now())
		if job.State == entity.EmailDead {
			logger.Warn("Email gave up", "error", err)
		} else {
			logger.Info("Email retry scheduled", "error", err, "not_before", job.NotBefore)
		}
	}
	w.settle(ctx, logger, job)
}

// settle uses a fresh context so a shutdown mid-send still records the outcome.
func (w *Worker) settle(ctx context.Context, logger *slog.Logger, job *entity.EmailJob) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := w.queue.Settle(ctx, job); err != nil {
		logger.Error("Failed to settle email job", "state", job.State, "error", err)
	}
}

func (w *Worker) purgeSent(ctx context.Context) {
	if w.cfg.Retention <= 0 {
		return
	}
	n, err := w.queue.PurgeSent(ctx, w.now().Add(-w.cfg.Retention))
	if err != nil {
		slog.Warn("Failed to purge sent emails", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Purged sent emails", "count", n)
	}
}

// Package email queues, renders and delivers transactional emails.
package email

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// Service writes emails to the outbox. Delivery is left to the Worker.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
	now        func() time.Time
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	return s.enqueue(ctx, entity.EmailPasswordReset, input.UserEmail, input.UserName,
		"Redefinir sua senha - Finance Dashboard",
		entity.PasswordResetEmail{
			UserName:  input.UserName,
			ResetURL:  input.ResetURL,
			ExpiresIn: input.ExpiresIn,
		})
}

func (s *Service) QueueThresholdAlertEmail(ctx context.Context, input adapter.QueueThresholdAlertInput) error {
	if len(input.Alerts) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Limite de gastos ultrapassado em %s - Finance Dashboard", input.Period)
	if len(input.Alerts) == 1 {
		subject = fmt.Sprintf("Limite de %s ultrapassado em %s - Finance Dashboard", input.Alerts[0].Category, input.Period)
	}

	link := input.DashboardURL
	if link == "" {
		link = s.appBaseURL + "/dashboard?" + url.Values{"period": {input.Period}}.Encode()
	}

	return s.enqueue(ctx, entity.EmailThresholdAlert, input.UserEmail, input.UserName, subject,
		entity.ThresholdAlertEmail{
			UserName:     input.UserName,
			Period:       input.Period,
			Alerts:       input.Alerts,
			DashboardURL: link,
		})
}

func (s *Service) enqueue(ctx context.Context, kind entity.EmailKind, to, name, subject string, payload any) error {
	job, err := entity.NewEmailJob(kind, to, name, subject, payload, s.now())
	if err != nil {
		return err
	}
	return s.queue.Enqueue(ctx, job)
}

var _ adapter.EmailService = (*Service)(nil)

package adapter

import (
	"context"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// OutgoingEmail is a rendered email ready for the provider.
type OutgoingEmail struct {
	Kind    entity.EmailKind
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// EmailSender delivers a rendered email and returns the provider's message id.
// Failures wrap domainerror.ErrEmailRejected or domainerror.ErrEmailDeferred.
type EmailSender interface {
	Send(ctx context.Context, email OutgoingEmail) (string, error)
}

// EmailService queues emails in the outbox.
type EmailService interface {
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error

	// QueueThresholdAlertEmail queues one email listing every category that
	// crossed its limit. An empty list queues nothing.
	QueueThresholdAlertEmail(ctx context.Context, input QueueThresholdAlertInput) error
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserID    string
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// QueueThresholdAlertInput represents the input for queueing a threshold alert email.
// DashboardURL defaults to the dashboard of Period.
type QueueThresholdAlertInput struct {
	UserEmail    string
	UserName     string
	Period       string
	Alerts       []entity.ThresholdAlertRow
	DashboardURL string
}

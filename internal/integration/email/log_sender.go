package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// LogSender logs emails instead of delivering them. It stands in when no
// Resend API key is configured.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (LogSender) Send(_ context.Context, email adapter.OutgoingEmail) (string, error) {
	id := "log-" + uuid.NewString()
	slog.Info("Email not delivered, no provider configured",
		"id", id,
		"kind", email.Kind,
		"to", email.To,
		"subject", email.Subject,
	)
	return id, nil
}

var _ adapter.EmailSender = LogSender{}

package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// ResendSender delivers email through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, fromName, fromEmail string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}
}

func (s *ResendSender) Send(ctx context.Context, email adapter.OutgoingEmail) (string, error) {
	resp, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		Tags:    []resend.Tag{{Name: "kind", Value: string(email.Kind)}},
	})
	if err != nil {
		return "", classifyResendError(err)
	}
	return resp.Id, nil
}

// rejectedMarkers identify failures a retry cannot fix: bad credentials,
// unverified sender domains and invalid payloads.
var rejectedMarkers = []string{"401", "403", "422", "unauthorized", "forbidden", "validation", "invalid"}

// classifyResendError wraps err in ErrEmailRejected or ErrEmailDeferred.
// Rate limits and server errors are deferred.
func classifyResendError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, marker := range rejectedMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %w", domainerror.ErrEmailRejected, err)
		}
	}
	return fmt.Errorf("%w: %w", domainerror.ErrEmailDeferred, err)
}

var _ adapter.EmailSender = (*ResendSender)(nil)

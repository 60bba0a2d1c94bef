package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EmailKind selects the template an outbox email is rendered with.
type EmailKind string

const (
	EmailPasswordReset  EmailKind = "password_reset"
	EmailThresholdAlert EmailKind = "threshold_alert"
)

// EmailState is the delivery state of an outbox email.
type EmailState string

const (
	EmailPending EmailState = "pending"
	EmailSending EmailState = "sending" // leased by a worker
	EmailSent    EmailState = "sent"
	EmailDead    EmailState = "dead" // gave up
)

// DefaultEmailAttempts is how many deliveries are tried before giving up.
const DefaultEmailAttempts = 3

// emailBackoff is the wait after the n-th failed attempt; the last value repeats.
var emailBackoff = []time.Duration{time.Minute, 5 * time.Minute, 30 * time.Minute}

// EmailJob is an email waiting in the outbox. Payload is the JSON encoded
// template data for Kind.
type EmailJob struct {
	ID          uuid.UUID
	Kind        EmailKind
	To          string
	ToName      string
	Subject     string
	Payload     []byte
	State       EmailState
	Attempts    int
	MaxAttempts int
	LastError   string
	ProviderID  string
	NotBefore   time.Time
	LeasedUntil *time.Time
	CreatedAt   time.Time
	FinishedAt  *time.Time
}

// NewEmailJob encodes payload and queues the email for immediate delivery.
func NewEmailJob(kind EmailKind, to, toName, subject string, payload any, now time.Time) (*EmailJob, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", kind, err)
	}
	return &EmailJob{
		ID:          uuid.New(),
		Kind:        kind,
		To:          to,
		ToName:      toName,
		Subject:     subject,
		Payload:     data,
		State:       EmailPending,
		MaxAttempts: DefaultEmailAttempts,
		NotBefore:   now,
		CreatedAt:   now,
	}, nil
}

// Decode unmarshals the payload into dest.
func (j *EmailJob) Decode(dest any) error {
	if err := json.Unmarshal(j.Payload, dest); err != nil {
		return fmt.Errorf("decode %s payload: %w", j.Kind, err)
	}
	return nil
}

// Delivered records a successful send.
func (j *EmailJob) Delivered(providerID string, now time.Time) {
	j.Attempts++
	j.State = EmailSent
	j.ProviderID = providerID
	j.LastError = ""
	j.LeasedUntil = nil
	j.FinishedAt = &now
}

// Failed records a failed send. The job is retried after a backoff unless
// the failure is permanent or the attempts ran out.
func (j *EmailJob) Failed(cause error, permanent bool, now time.Time) {
	j.Attempts++
	j.LastError = cause.Error()
	j.LeasedUntil = nil

	if permanent || j.Attempts >= j.MaxAttempts {
		j.State = EmailDead
		j.FinishedAt = &now
		return
	}

	delay := emailBackoff[len(emailBackoff)-1]
	if j.Attempts <= len(emailBackoff) {
		delay = emailBackoff[j.Attempts-1]
	}
	j.State = EmailPending
	j.NotBefore = now.Add(delay)
}

// Finished reports whether the job reached a final state.
func (j *EmailJob) Finished() bool {
	return j.State == EmailSent || j.State == EmailDead
}

// PasswordResetEmail is the payload of EmailPasswordReset.
type PasswordResetEmail struct {
	UserName  string `json:"user_name"`
	ResetURL  string `json:"reset_url"`
	ExpiresIn string `json:"expires_in"`
}

// ThresholdAlertEmail is the payload of EmailThresholdAlert.
type ThresholdAlertEmail struct {
	UserName     string              `json:"user_name"`
	Period       string              `json:"period"`
	Alerts       []ThresholdAlertRow `json:"alerts"`
	DashboardURL string              `json:"dashboard_url"`
}

// ThresholdAlertRow is one category of a threshold alert email. Amounts are
// preformatted with two decimals.
type ThresholdAlertRow struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Limit    string `json:"limit"`
	Excess   string `json:"excess"`
	Percent  string `json:"percent"`
}

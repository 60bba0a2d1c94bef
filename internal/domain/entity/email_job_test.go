package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailJobBackoff(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	job, err := NewEmailJob(EmailPasswordReset, "a@b.com", "A", "s", PasswordResetEmail{ResetURL: "u"}, now)
	require.NoError(t, err)
	job.MaxAttempts = 5

	for i, want := range []time.Duration{time.Minute, 5 * time.Minute, 30 * time.Minute, 30 * time.Minute} {
		job.Failed(errors.New("timeout"), false, now)
		assert.Equal(t, EmailPending, job.State, "attempt %d", i+1)
		assert.Equal(t, now.Add(want), job.NotBefore, "attempt %d", i+1)
	}

	job.Failed(errors.New("timeout"), false, now)
	assert.Equal(t, EmailDead, job.State)
	assert.True(t, job.Finished())
	assert.Equal(t, 5, job.Attempts)
}

func TestEmailJobPayloadRoundTrip(t *testing.T) {
	job, err := NewEmailJob(EmailThresholdAlert, "a@b.com", "A", "s", ThresholdAlertEmail{
		Period: "2025-03",
		Alerts: []ThresholdAlertRow{{Category: "lazer", Excess: "50.00"}},
	}, time.Now())
	require.NoError(t, err)

	var got ThresholdAlertEmail
	require.NoError(t, job.Decode(&got))
	assert.Equal(t, "2025-03", got.Period)
	require.Len(t, got.Alerts, 1)
	assert.Equal(t, "50.00", got.Alerts[0].Excess)

	job.Delivered("re_1", time.Now())
	assert.True(t, job.Finished())
	assert.Equal(t, "re_1", job.ProviderID)
}

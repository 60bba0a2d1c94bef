// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ThresholdRepository stores each user's category spending limits.
type ThresholdRepository interface {
	// Get returns the user's thresholds. A user without rows gets an empty map.
	Get(ctx context.Context, userID uuid.UUID) (entity.Thresholds, error)

	// Replace swaps the user's thresholds for the given map atomically.
	Replace(ctx context.Context, userID uuid.UUID, thresholds entity.Thresholds) error
}

// AlertNotificationRepository remembers which alerts were already emailed.
type AlertNotificationRepository interface {
	// Record stores the notification unless one exists for the same
	// user, category and period. It reports whether a row was inserted.
	Record(ctx context.Context, notification *entity.AlertNotification) (bool, error)
}

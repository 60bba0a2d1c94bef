// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Thresholds maps an expense category name to its monthly spending limit.
type Thresholds map[string]decimal.Decimal

// DefaultThresholds returns the limits new users start with.
func DefaultThresholds() Thresholds {
	return Thresholds{
		"alimentação": decimal.NewFromInt(500),
		"transporte":  decimal.NewFromInt(300),
		"lazer":       decimal.NewFromInt(200),
	}
}

// Limit returns the limit for a category and whether one is defined.
func (t Thresholds) Limit(category string) (decimal.Decimal, bool) {
	limit, ok := t[category]
	return limit, ok
}

// AlertNotification records that a user was notified about a category
// crossing its threshold in a given month.
type AlertNotification struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Category   string
	Period     string // YYYY-MM
	Policy     string
	Total      decimal.Decimal
	Limit      decimal.Decimal
	NotifiedAt time.Time
}

// NewAlertNotification creates a new AlertNotification entity.
func NewAlertNotification(userID uuid.UUID, category, period, policy string, total, limit decimal.Decimal) *AlertNotification {
	return &AlertNotification{
		ID:         uuid.New(),
		UserID:     userID,
		Category:   category,
		Period:     period,
		Policy:     policy,
		Total:      total,
		Limit:      limit,
		NotifiedAt: time.Now().UTC(),
	}
}

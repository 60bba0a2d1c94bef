// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ThresholdModel represents one row of the thresholds table.
type ThresholdModel struct {
	UserID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category  string          `gorm:"type:varchar(50);primaryKey"`
	Limit     decimal.Decimal `gorm:"column:limit_amount;type:decimal(15,2);not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ThresholdModel.
func (ThresholdModel) TableName() string {
	return "thresholds"
}

// ThresholdsFromRows folds rows into the domain map.
func ThresholdsFromRows(rows []ThresholdModel) entity.Thresholds {
	th := make(entity.Thresholds, len(rows))
	for _, r := range rows {
		th[r.Category] = r.Limit
	}
	return th
}

// ThresholdRows expands the domain map into rows for the user.
func ThresholdRows(userID uuid.UUID, th entity.Thresholds) []ThresholdModel {
	now := time.Now().UTC()
	rows := make([]ThresholdModel, 0, len(th))
	for category, limit := range th {
		rows = append(rows, ThresholdModel{
			UserID:    userID,
			Category:  category,
			Limit:     limit,
			UpdatedAt: now,
		})
	}
	return rows
}

// AlertNotificationModel represents the alert_notifications table.
type AlertNotificationModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_alert_user_category_period"`
	Category   string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_alert_user_category_period"`
	Period     string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_alert_user_category_period"`
	Policy     string          `gorm:"type:varchar(20);not null"`
	Total      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Limit      decimal.Decimal `gorm:"column:limit_amount;type:decimal(15,2);not null"`
	NotifiedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AlertNotificationModel.
func (AlertNotificationModel) TableName() string {
	return "alert_notifications"
}

// AlertNotificationFromEntity creates an AlertNotificationModel from a domain entity.
func AlertNotificationFromEntity(n *entity.AlertNotification) *AlertNotificationModel {
	return &AlertNotificationModel{
		ID:         n.ID,
		UserID:     n.UserID,
		Category:   n.Category,
		Period:     n.Period,
		Policy:     n.Policy,
		Total:      n.Total,
		Limit:      n.Limit,
		NotifiedAt: n.NotifiedAt,
	}
}

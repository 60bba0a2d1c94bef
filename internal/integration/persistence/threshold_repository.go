// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

// thresholdRepository implements the adapter.ThresholdRepository interface.
type thresholdRepository struct {
	db *gorm.DB
}

// NewThresholdRepository creates a new threshold repository instance.
func NewThresholdRepository(db *gorm.DB) adapter.ThresholdRepository {
	return &thresholdRepository{db: db}
}

// Get returns the user's thresholds.
func (r *thresholdRepository) Get(ctx context.Context, userID uuid.UUID) (entity.Thresholds, error) {
	var rows []model.ThresholdModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return model.ThresholdsFromRows(rows), nil
}

// Replace deletes the user's rows and inserts the new map in one transaction.
func (r *thresholdRepository) Replace(ctx context.Context, userID uuid.UUID, thresholds entity.Thresholds) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.ThresholdModel{}).Error; err != nil {
			return err
		}

		rows := model.ThresholdRows(userID, thresholds)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

// alertNotificationRepository implements the adapter.AlertNotificationRepository interface.
type alertNotificationRepository struct {
	db *gorm.DB
}

// NewAlertNotificationRepository creates a new alert notification repository instance.
func NewAlertNotificationRepository(db *gorm.DB) adapter.AlertNotificationRepository {
	return &alertNotificationRepository{db: db}
}

// Record inserts the notification unless the (user, category, period) row exists.
func (r *alertNotificationRepository) Record(ctx context.Context, notification *entity.AlertNotification) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model.AlertNotificationFromEntity(notification))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

// creditCardRepository implements the adapter.CreditCardRepository interface.
type creditCardRepository struct {
	db *gorm.DB
}

// NewCreditCardRepository creates a new credit card repository instance.
func NewCreditCardRepository(db *gorm.DB) adapter.CreditCardRepository {
	return &creditCardRepository{db: db}
}

// Create creates a new credit card in the database.
func (r *creditCardRepository) Create(ctx context.Context, card *entity.CreditCard) error {
	return r.db.WithContext(ctx).Create(model.CreditCardFromEntity(card)).Error
}

// FindByID retrieves a credit card by its ID.
func (r *creditCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	var cardModel model.CreditCardModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCreditCardNotFound
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

// FindByUser retrieves the user's cards ordered by name.
func (r *creditCardRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CreditCard, error) {
	var cardModels []model.CreditCardModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.CreditCard, len(cardModels))
	for i := range cardModels {
		cards[i] = cardModels[i].ToEntity()
	}
	return cards, nil
}

// ExistsByNameAndDigits checks if the user already registered the same card.
func (r *creditCardRepository) ExistsByNameAndDigits(ctx context.Context, userID uuid.UUID, name, lastDigits string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CreditCardModel{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?) AND last_digits = ?", userID, name, lastDigits).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes a credit card and detaches it from the user's expenses.
func (r *creditCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.CreditCardModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCreditCardNotFound
		}
		return tx.Model(&model.ExpenseModel{}).
			Where("credit_card_id = ?", id).
			Update("credit_card_id", nil).Error
	})
}

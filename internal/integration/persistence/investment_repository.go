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

// investmentRepository implements the adapter.InvestmentRepository interface.
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository instance.
func NewInvestmentRepository(db *gorm.DB) adapter.InvestmentRepository {
	return &investmentRepository{db: db}
}

func (r *investmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	return r.db.WithContext(ctx).Create(model.InvestmentFromEntity(investment)).Error
}

func (r *investmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	var investmentModel model.InvestmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&investmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvestmentNotFound
		}
		return nil, result.Error
	}
	return investmentModel.ToEntity(), nil
}

func (r *investmentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error) {
	var investmentModels []model.InvestmentModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&investmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	investments := make([]*entity.Investment, len(investmentModels))
	for i := range investmentModels {
		investments[i] = investmentModels[i].ToEntity()
	}
	return investments, nil
}

func (r *investmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	return r.db.WithContext(ctx).Save(model.InvestmentFromEntity(investment)).Error
}

func (r *investmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InvestmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvestmentNotFound
	}
	return nil
}

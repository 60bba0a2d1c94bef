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

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{db: db}
}

func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	return r.db.WithContext(ctx).Create(model.IncomeFromEntity(income)).Error
}

func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

func (r *incomeRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter adapter.IncomeFilter) ([]*entity.Income, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		query = query.Where("date < ?", filter.EndDate.UTC())
	}

	var incomeModels []model.IncomeModel
	if err := query.Order("date DESC, created_at DESC").Find(&incomeModels).Error; err != nil {
		return nil, err
	}

	incomes := make([]*entity.Income, len(incomeModels))
	for i := range incomeModels {
		incomes[i] = incomeModels[i].ToEntity()
	}
	return incomes, nil
}

func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	return r.db.WithContext(ctx).Save(model.IncomeFromEntity(income)).Error
}

func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}

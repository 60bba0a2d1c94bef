package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence/model"
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(model.CategoryFromEntity(category)).Error
}

func (r *categoryRepository) CreateMany(ctx context.Context, categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	rows := make([]*model.CategoryModel, len(categories))
	for i, c := range categories {
		rows[i] = model.CategoryFromEntity(c)
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var row model.CategoryModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID, kind entity.CategoryKind) ([]*entity.Category, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}

	var rows []model.CategoryModel
	if err := q.Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Category, len(rows))
	for i := range rows {
		out[i] = rows[i].ToEntity()
	}
	return out, nil
}

func (r *categoryRepository) ExistsByName(ctx context.Context, userID uuid.UUID, name string, kind entity.CategoryKind) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ? AND kind = ? AND LOWER(name) = LOWER(?)", userID, kind, name).
		Count(&n).Error
	return n > 0, err
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(model.CategoryFromEntity(category)).Error
}

// Rename saves the category and moves the records filed under oldName to
// its new name. A threshold already set for the new name wins over the old one.
func (r *categoryRepository) Rename(ctx context.Context, category *entity.Category, oldName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model.CategoryFromEntity(category)).Error; err != nil {
			return err
		}

		owned := "user_id = ? AND category = ?"
		moves := []any{&model.IncomeModel{}}
		if category.Kind == entity.CategoryKindExpense {
			moves = []any{&model.ExpenseModel{}, &model.RecurringExpenseModel{}}
		}
		for _, m := range moves {
			if err := tx.Model(m).Where(owned, category.UserID, oldName).Update("category", category.Name).Error; err != nil {
				return fmt.Errorf("failed to move %T to %q: %w", m, category.Name, err)
			}
		}
		if category.Kind != entity.CategoryKindExpense {
			return nil
		}

		var taken int64
		if err := tx.Model(&model.ThresholdModel{}).Where(owned, category.UserID, category.Name).Count(&taken).Error; err != nil {
			return err
		}
		old := tx.Model(&model.ThresholdModel{}).Where(owned, category.UserID, oldName)
		if taken > 0 {
			return old.Delete(&model.ThresholdModel{}).Error
		}
		return old.Update("category", category.Name).Error
	})
}

// Delete soft deletes a category. Records keep the name they were filed under.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

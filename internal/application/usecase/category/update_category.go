package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// UpdateCategoryInput patches a category. Nil fields are left alone and
// Subcategories replaces the whole list. The kind cannot change.
type UpdateCategoryInput struct {
	CategoryID    uuid.UUID
	UserID        uuid.UUID
	Name          *string
	Color         *string
	Subcategories *[]string
}

type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase edits a category. A rename carries the user's
// expenses, incomes and thresholds over to the new name.
type UpdateCategoryUseCase struct {
	categories adapter.CategoryRepository
	now        func() time.Time
}

func NewUpdateCategoryUseCase(categories adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categories: categories,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := findOwned(ctx, uc.categories, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}
	oldName := category.Name

	if input.Name != nil {
		name, err := cleanName(*input.Name)
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(name, oldName) {
			if err := ensureNameFree(ctx, uc.categories, input.UserID, name, category.Kind); err != nil {
				return nil, err
			}
		}
		category.Name = name
	}
	if input.Color != nil {
		if category.Color, err = cleanColor(*input.Color); err != nil {
			return nil, err
		}
	}
	if input.Subcategories != nil {
		if category.Subcategories, err = cleanSubcategories(*input.Subcategories); err != nil {
			return nil, err
		}
	}
	category.UpdatedAt = uc.now()

	if category.Name == oldName {
		err = uc.categories.Update(ctx, category)
	} else {
		err = uc.categories.Rename(ctx, category, oldName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &UpdateCategoryOutput{Category: category}, nil
}

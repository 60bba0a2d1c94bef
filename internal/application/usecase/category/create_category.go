package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreateCategoryInput creates a category. Color defaults to
// entity.DefaultCategoryColor and Kind to expense.
type CreateCategoryInput struct {
	UserID        uuid.UUID
	Name          string
	Subcategories []string
	Color         string
	Kind          entity.CategoryKind
}

type CreateCategoryOutput struct {
	Category *entity.Category
}

type CreateCategoryUseCase struct {
	categories adapter.CategoryRepository
}

func NewCreateCategoryUseCase(categories adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categories: categories}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := cleanName(input.Name)
	if err != nil {
		return nil, err
	}
	kind := input.Kind
	if kind == "" {
		kind = entity.CategoryKindExpense
	}
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	color, err := cleanColor(input.Color)
	if err != nil {
		return nil, err
	}
	subcategories, err := cleanSubcategories(input.Subcategories)
	if err != nil {
		return nil, err
	}
	if err := ensureNameFree(ctx, uc.categories, input.UserID, name, kind); err != nil {
		return nil, err
	}

	category := entity.NewCategory(input.UserID, name, subcategories, color, kind)
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &CreateCategoryOutput{Category: category}, nil
}

package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

type DeleteCategoryInput struct {
	CategoryID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCategoryUseCase removes a category. Records filed under its name are kept.
type DeleteCategoryUseCase struct {
	categories adapter.CategoryRepository
}

func NewDeleteCategoryUseCase(categories adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categories: categories}
}

func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	category, err := findOwned(ctx, uc.categories, input.CategoryID, input.UserID)
	if err != nil {
		return err
	}
	if err := uc.categories.Delete(ctx, category.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

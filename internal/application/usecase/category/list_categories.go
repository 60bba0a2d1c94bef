package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ListCategoriesInput lists a user's categories. An empty Kind lists both kinds.
type ListCategoriesInput struct {
	UserID uuid.UUID
	Kind   entity.CategoryKind
}

type ListCategoriesOutput struct {
	Categories []*entity.Category
}

type ListCategoriesUseCase struct {
	categories adapter.CategoryRepository
}

func NewListCategoriesUseCase(categories adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categories: categories}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input.Kind != "" {
		if err := checkKind(input.Kind); err != nil {
			return nil, err
		}
	}
	categories, err := uc.categories.FindByUser(ctx, input.UserID, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return &ListCategoriesOutput{Categories: categories}, nil
}

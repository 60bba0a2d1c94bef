package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CategoryRepository stores user categories. Expenses, incomes and
// thresholds refer to a category by name, not by id.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	CreateMany(ctx context.Context, categories []*entity.Category) error

	// FindByID returns domainerror.ErrCategoryNotFound for unknown ids.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUser lists categories by name. An empty kind lists both kinds.
	FindByUser(ctx context.Context, userID uuid.UUID, kind entity.CategoryKind) ([]*entity.Category, error)

	// ExistsByName compares names case-insensitively within one kind.
	ExistsByName(ctx context.Context, userID uuid.UUID, name string, kind entity.CategoryKind) (bool, error)

	Update(ctx context.Context, category *entity.Category) error

	// Rename stores category and refiles every record named oldName under
	// the new name in the same transaction.
	Rename(ctx context.Context, category *entity.Category, oldName string) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryKind distinguishes expense categories from income categories.
type CategoryKind string

const (
	CategoryKindExpense CategoryKind = "expense"
	CategoryKindIncome  CategoryKind = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// Category groups expenses or incomes under a user-defined name.
// Subcategories keep insertion order for display.
type Category struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Subcategories []string
	Color         string
	Kind          CategoryKind
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for color should be applied in the Application layer (UseCase)
// before calling this constructor.
func NewCategory(userID uuid.UUID, name string, subcategories []string, color string, kind CategoryKind) *Category {
	now := time.Now().UTC()

	if subcategories == nil {
		subcategories = []string{}
	}

	return &Category{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Subcategories: subcategories,
		Color:         color,
		Kind:          kind,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// HasSubcategory reports whether name is one of the category's subcategories.
func (c *Category) HasSubcategory(name string) bool {
	for _, s := range c.Subcategories {
		if s == name {
			return true
		}
	}
	return false
}

// DefaultExpenseCategories returns the categories seeded for new users.
func DefaultExpenseCategories(userID uuid.UUID) []*Category {
	return []*Category{
		NewCategory(userID, "alimentação", []string{"mercado", "restaurante"}, "#F59E0B", CategoryKindExpense),
		NewCategory(userID, "transporte", []string{"combustível", "aplicativo"}, "#3B82F6", CategoryKindExpense),
		NewCategory(userID, "lazer", []string{}, "#10B981", CategoryKindExpense),
		NewCategory(userID, "moradia", []string{"aluguel", "energia", "internet"}, DefaultCategoryColor, CategoryKindExpense),
	}
}

// DefaultIncomeCategories returns the income categories seeded for new users.
func DefaultIncomeCategories(userID uuid.UUID) []*Category {
	return []*Category{
		NewCategory(userID, "salário", []string{}, "#22C55E", CategoryKindIncome),
		NewCategory(userID, "freelance", []string{}, "#14B8A6", CategoryKindIncome),
	}
}

// Package category implements the category use cases. Names are unique per
// user and kind, ignoring case.
package category

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

const (
	MaxCategoryNameLength = 50
	MaxSubcategories      = 30
)

var hexColor = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

func fail(code domainerror.CategoryErrorCode, sentinel error, message string) error {
	return domainerror.NewCategoryError(code, message, sentinel)
}

func cleanName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		return "", fail(domainerror.ErrCodeCategoryNameRequired, domainerror.ErrCategoryNameRequired, "category name is required")
	case utf8.RuneCountInString(name) > MaxCategoryNameLength:
		return "", fail(domainerror.ErrCodeCategoryNameTooLong, domainerror.ErrCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength))
	}
	return name, nil
}

// cleanColor falls back to the default color for blank input.
func cleanColor(raw string) (string, error) {
	color := strings.TrimSpace(raw)
	if color == "" {
		return entity.DefaultCategoryColor, nil
	}
	if !hexColor.MatchString(color) {
		return "", fail(domainerror.ErrCodeInvalidColorFormat, domainerror.ErrInvalidColorFormat, "color must be a hex value such as #3B82F6")
	}
	return strings.ToUpper(color), nil
}

func checkKind(kind entity.CategoryKind) error {
	if kind != entity.CategoryKindExpense && kind != entity.CategoryKindIncome {
		return fail(domainerror.ErrCodeInvalidCategoryKind, domainerror.ErrInvalidCategoryKind, "category kind must be 'expense' or 'income'")
	}
	return nil
}

// cleanSubcategories trims names and drops blanks, keeping the given order.
// Repeats are rejected ignoring case.
func cleanSubcategories(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if utf8.RuneCountInString(s) > MaxCategoryNameLength {
			return nil, badSubcategory("subcategory names must not exceed %d characters", MaxCategoryNameLength)
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			return nil, badSubcategory("subcategory %q is repeated", s)
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	if len(out) > MaxSubcategories {
		return nil, badSubcategory("a category may hold at most %d subcategories", MaxSubcategories)
	}
	return out, nil
}

func badSubcategory(format string, args ...any) error {
	return fail(domainerror.ErrCodeInvalidSubcategory, domainerror.ErrInvalidSubcategory, fmt.Sprintf(format, args...))
}

func ensureNameFree(ctx context.Context, repo adapter.CategoryRepository, userID uuid.UUID, name string, kind entity.CategoryKind) error {
	taken, err := repo.ExistsByName(ctx, userID, name, kind)
	if err != nil {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if taken {
		return fail(domainerror.ErrCodeCategoryNameExists, domainerror.ErrCategoryNameExists, "a category with this name already exists")
	}
	return nil
}

// findOwned loads a category of userID. Categories of other users are
// reported as forbidden rather than missing.
func findOwned(ctx context.Context, repo adapter.CategoryRepository, id, userID uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, id)
	if errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, fail(domainerror.ErrCodeCategoryNotFound, domainerror.ErrCategoryNotFound, "category not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID {
		return nil, fail(domainerror.ErrCodeNotAuthorizedCategory, domainerror.ErrNotAuthorizedToModifyCategory, "not authorized to modify this category")
	}
	return category, nil
}

// Package income contains income-related use cases.
package income

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

const (
	// MaxCategoryLength is the maximum allowed length for income categories.
	MaxCategoryLength = 50
	// MaxNoteLength is the maximum allowed length for source and note.
	MaxNoteLength = 500
)

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	UserID   uuid.UUID
	Category string
	Amount   decimal.Decimal
	Date     time.Time
	Source   string // Optional
	Note     string // Optional
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	cache      adapter.SummaryCache
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository, cache adapter.SummaryCache) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
		cache:      cache,
	}
}

// Execute validates and stores the income.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if err := normalize(&input); err != nil {
		return nil, err
	}

	income := entity.NewIncome(input.UserID, input.Category, input.Amount, input.Date, input.Source, input.Note)
	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	invalidate(ctx, uc.cache, input.UserID)

	return &CreateIncomeOutput{Income: income}, nil
}

// normalize trims and validates the editable income fields in place.
func normalize(input *CreateIncomeInput) error {
	input.Category = strings.TrimSpace(input.Category)
	input.Source = strings.TrimSpace(input.Source)
	input.Note = strings.TrimSpace(input.Note)

	if input.Category == "" {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeCategoryRequired,
			"category is required",
			domainerror.ErrIncomeCategoryRequired,
		)
	}
	if utf8.RuneCountInString(input.Category) > MaxCategoryLength {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeCategoryRequired,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrIncomeCategoryRequired,
		)
	}
	if !input.Amount.IsPositive() {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidIncomeAmount,
		)
	}
	input.Amount = input.Amount.Round(2)

	if input.Date.IsZero() {
		return domainerror.NewIncomeError(domainerror.ErrCodeInvalidIncomeDate, "date is required", nil)
	}
	input.Date = input.Date.UTC()

	if utf8.RuneCountInString(input.Source) > MaxNoteLength || utf8.RuneCountInString(input.Note) > MaxNoteLength {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeMissingIncomeFields,
			fmt.Sprintf("source and note must not exceed %d characters", MaxNoteLength),
			nil,
		)
	}
	return nil
}

// findOwned loads an income and hides ones owned by other users.
func findOwned(ctx context.Context, repo adapter.IncomeRepository, id, userID uuid.UUID) (*entity.Income, error) {
	income, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to load income: %w", err)
	}
	if income.UserID != userID {
		return nil, notFound()
	}
	return income, nil
}

func notFound() error {
	return domainerror.NewIncomeError(
		domainerror.ErrCodeIncomeNotFound,
		"income not found",
		domainerror.ErrIncomeNotFound,
	)
}

func invalidate(ctx context.Context, cache adapter.SummaryCache, userID uuid.UUID) {
	if err := cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate cached summaries", "user_id", userID, "error", err)
	}
}

package threshold

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

// MaxCategoryLength is the maximum allowed length for a threshold key.
const MaxCategoryLength = 50

// ReplaceThresholdsInput represents the input for replacing thresholds.
type ReplaceThresholdsInput struct {
	UserID     uuid.UUID
	Thresholds map[string]float64
}

// ReplaceThresholdsOutput holds the map as stored.
type ReplaceThresholdsOutput struct {
	Thresholds entity.Thresholds
}

// ReplaceThresholdsUseCase replaces the user's thresholds wholesale.
type ReplaceThresholdsUseCase struct {
	thresholdRepo adapter.ThresholdRepository
	cache         adapter.SummaryCache
}

// NewReplaceThresholdsUseCase creates a new ReplaceThresholdsUseCase instance.
func NewReplaceThresholdsUseCase(thresholdRepo adapter.ThresholdRepository, cache adapter.SummaryCache) *ReplaceThresholdsUseCase {
	return &ReplaceThresholdsUseCase{
		thresholdRepo: thresholdRepo,
		cache:         cache,
	}
}

// Execute validates every entry and stores the map. An empty map clears all limits.
func (uc *ReplaceThresholdsUseCase) Execute(ctx context.Context, input ReplaceThresholdsInput) (*ReplaceThresholdsOutput, error) {
	if input.Thresholds == nil {
		return nil, domainerror.NewThresholdError(
			domainerror.ErrCodeMissingThresholds,
			"thresholds object is required",
			nil,
		)
	}

	th := make(entity.Thresholds, len(input.Thresholds))
	for category, value := range input.Thresholds {
		key := strings.TrimSpace(category)
		if key == "" || utf8.RuneCountInString(key) > MaxCategoryLength {
			return nil, domainerror.NewThresholdError(
				domainerror.ErrCodeEmptyThresholdCategory,
				fmt.Sprintf("threshold category must have 1 to %d characters", MaxCategoryLength),
				domainerror.ErrEmptyThresholdCategory,
			)
		}
		if _, dup := th[key]; dup {
			return nil, domainerror.NewThresholdError(
				domainerror.ErrCodeDuplicateThreshold,
				fmt.Sprintf("threshold for %q is given more than once", key),
				domainerror.ErrDuplicateThresholdCategory,
			)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return nil, domainerror.NewThresholdError(
				domainerror.ErrCodeInvalidThresholdValue,
				fmt.Sprintf("threshold for %q must be a finite non-negative number", key),
				domainerror.ErrInvalidThresholdValue,
			)
		}
		th[key] = decimal.NewFromFloat(value).Round(2)
	}

	if err := uc.thresholdRepo.Replace(ctx, input.UserID, th); err != nil {
		return nil, fmt.Errorf("failed to replace thresholds: %w", err)
	}

	if err := uc.cache.InvalidateUser(ctx, input.UserID); err != nil {
		slog.Warn("Failed to invalidate cached summaries", "user_id", input.UserID, "error", err)
	}

	return &ReplaceThresholdsOutput{Thresholds: th}, nil
}

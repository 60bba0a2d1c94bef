// Package threshold contains spending threshold use cases.
package threshold

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// GetThresholdsInput represents the input for reading thresholds.
type GetThresholdsInput struct {
	UserID uuid.UUID
}

// GetThresholdsOutput holds the user's category limits.
type GetThresholdsOutput struct {
	Thresholds entity.Thresholds
}

// GetThresholdsUseCase reads the user's thresholds.
type GetThresholdsUseCase struct {
	thresholdRepo adapter.ThresholdRepository
}

// NewGetThresholdsUseCase creates a new GetThresholdsUseCase instance.
func NewGetThresholdsUseCase(thresholdRepo adapter.ThresholdRepository) *GetThresholdsUseCase {
	return &GetThresholdsUseCase{thresholdRepo: thresholdRepo}
}

// Execute returns the stored map exactly as last replaced.
func (uc *GetThresholdsUseCase) Execute(ctx context.Context, input GetThresholdsInput) (*GetThresholdsOutput, error) {
	th, err := uc.thresholdRepo.Get(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load thresholds: %w", err)
	}
	if th == nil {
		th = entity.Thresholds{}
	}
	return &GetThresholdsOutput{Thresholds: th}, nil
}

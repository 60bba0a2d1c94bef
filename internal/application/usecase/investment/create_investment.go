// Package investment contains investment and crypto quote use cases.
package investment

import (
	"context"
	"errors"
	"fmt"
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
	// MaxNameLength is the maximum allowed length for type and name.
	MaxNameLength = 100
	// MaxDescriptionLength is the maximum allowed length for descriptions.
	MaxDescriptionLength = 500
)

// Fields holds the editable part of an investment.
type Fields struct {
	Type        string
	Name        string
	Amount      decimal.Decimal
	Date        time.Time
	IsCrypto    bool
	Description string
}

// CreateInvestmentInput represents the input for investment creation.
type CreateInvestmentInput struct {
	UserID uuid.UUID
	Fields
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment *entity.Investment
}

// CreateInvestmentUseCase handles investment creation logic.
type CreateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{investmentRepo: investmentRepo}
}

// Execute validates and stores the investment.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input CreateInvestmentInput) (*CreateInvestmentOutput, error) {
	if err := input.Fields.normalize(); err != nil {
		return nil, err
	}

	f := input.Fields
	investment := entity.NewInvestment(input.UserID, f.Type, f.Name, f.Amount, f.Date, f.IsCrypto, f.Description)
	if err := uc.investmentRepo.Create(ctx, investment); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	return &CreateInvestmentOutput{Investment: investment}, nil
}

func (f *Fields) normalize() error {
	f.Type = strings.TrimSpace(f.Type)
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)

	if f.Type == "" || f.Name == "" {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeMissingInvestmentFields,
			"type and name are required",
			nil,
		)
	}
	if utf8.RuneCountInString(f.Type) > MaxNameLength || utf8.RuneCountInString(f.Name) > MaxNameLength {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeMissingInvestmentFields,
			fmt.Sprintf("type and name must not exceed %d characters", MaxNameLength),
			nil,
		)
	}
	if utf8.RuneCountInString(f.Description) > MaxDescriptionLength {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeMissingInvestmentFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}
	if !f.Amount.IsPositive() {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidInvestmentAmount,
		)
	}
	f.Amount = f.Amount.Round(2)

	if f.Date.IsZero() {
		return domainerror.NewInvestmentError(domainerror.ErrCodeInvalidInvestmentDate, "date is required", nil)
	}
	f.Date = f.Date.UTC()
	return nil
}

// findOwned loads an investment and hides ones owned by other users.
func findOwned(ctx context.Context, repo adapter.InvestmentRepository, id, userID uuid.UUID) (*entity.Investment, error) {
	investment, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvestmentNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to load investment: %w", err)
	}
	if investment.UserID != userID {
		return nil, notFound()
	}
	return investment, nil
}

func notFound() error {
	return domainerror.NewInvestmentError(
		domainerror.ErrCodeInvestmentNotFound,
		"investment not found",
		domainerror.ErrInvestmentNotFound,
	)
}

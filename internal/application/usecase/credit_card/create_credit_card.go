// Package creditcard contains credit card use cases.
package creditcard

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

// MaxNameLength is the maximum allowed length for card names.
const MaxNameLength = 50

var lastDigitsRegex = regexp.MustCompile(`^[0-9]{4}$`)

// CreateCreditCardInput represents the input for card registration.
type CreateCreditCardInput struct {
	UserID     uuid.UUID
	Name       string
	LastDigits string
}

// CreateCreditCardOutput represents the output of card registration.
type CreateCreditCardOutput struct {
	CreditCard *entity.CreditCard
}

// CreateCreditCardUseCase handles card registration logic.
type CreateCreditCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewCreateCreditCardUseCase creates a new CreateCreditCardUseCase instance.
func NewCreateCreditCardUseCase(cardRepo adapter.CreditCardRepository) *CreateCreditCardUseCase {
	return &CreateCreditCardUseCase{cardRepo: cardRepo}
}

// Execute validates and stores the card.
func (uc *CreateCreditCardUseCase) Execute(ctx context.Context, input CreateCreditCardInput) (*CreateCreditCardOutput, error) {
	name := strings.TrimSpace(input.Name)
	digits := strings.TrimSpace(input.LastDigits)

	if name == "" {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeMissingCreditCardField,
			"name is required",
			nil,
		)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeMissingCreditCardField,
			fmt.Sprintf("name must not exceed %d characters", MaxNameLength),
			nil,
		)
	}
	if !lastDigitsRegex.MatchString(digits) {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeInvalidLastDigits,
			"last digits must be exactly 4 digits",
			domainerror.ErrInvalidLastDigits,
		)
	}

	exists, err := uc.cardRepo.ExistsByNameAndDigits(ctx, input.UserID, name, digits)
	if err != nil {
		return nil, fmt.Errorf("failed to check credit card existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCreditCardError(
			domainerror.ErrCodeCreditCardExists,
			"a credit card with this name and digits already exists",
			domainerror.ErrCreditCardExists,
		)
	}

	card := entity.NewCreditCard(input.UserID, name, digits)
	if err := uc.cardRepo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}

	return &CreateCreditCardOutput{CreditCard: card}, nil
}

func notFound() error {
	return domainerror.NewCreditCardError(
		domainerror.ErrCodeCreditCardNotFound,
		"credit card not found",
		domainerror.ErrCreditCardNotFound,
	)
}

// isNotFound reports whether err is the repository's missing-card sentinel.
func isNotFound(err error) bool {
	return errors.Is(err, domainerror.ErrCreditCardNotFound)
}

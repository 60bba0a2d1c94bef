package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// ListCreditCardsInput represents the input for listing cards.
type ListCreditCardsInput struct {
	UserID uuid.UUID
}

// ListCreditCardsOutput represents the output of listing cards.
type ListCreditCardsOutput struct {
	CreditCards []*entity.CreditCard
}

// ListCreditCardsUseCase handles card listing logic.
type ListCreditCardsUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewListCreditCardsUseCase creates a new ListCreditCardsUseCase instance.
func NewListCreditCardsUseCase(cardRepo adapter.CreditCardRepository) *ListCreditCardsUseCase {
	return &ListCreditCardsUseCase{cardRepo: cardRepo}
}

// Execute lists the user's cards.
func (uc *ListCreditCardsUseCase) Execute(ctx context.Context, input ListCreditCardsInput) (*ListCreditCardsOutput, error) {
	cards, err := uc.cardRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	return &ListCreditCardsOutput{CreditCards: cards}, nil
}

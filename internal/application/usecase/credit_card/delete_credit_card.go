package creditcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// DeleteCreditCardInput represents the input for card deletion.
type DeleteCreditCardInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// DeleteCreditCardUseCase handles card deletion logic.
// Expenses charged to the card keep existing without a card reference.
type DeleteCreditCardUseCase struct {
	cardRepo adapter.CreditCardRepository
}

// NewDeleteCreditCardUseCase creates a new DeleteCreditCardUseCase instance.
func NewDeleteCreditCardUseCase(cardRepo adapter.CreditCardRepository) *DeleteCreditCardUseCase {
	return &DeleteCreditCardUseCase{cardRepo: cardRepo}
}

// Execute deletes the card.
func (uc *DeleteCreditCardUseCase) Execute(ctx context.Context, input DeleteCreditCardInput) error {
	card, err := uc.cardRepo.FindByID(ctx, input.ID)
	if err != nil {
		if isNotFound(err) {
			return notFound()
		}
		return fmt.Errorf("failed to load credit card: %w", err)
	}
	if card.UserID != input.UserID {
		return notFound()
	}

	if err := uc.cardRepo.Delete(ctx, card.ID); err != nil {
		return fmt.Errorf("failed to delete credit card: %w", err)
	}
	return nil
}

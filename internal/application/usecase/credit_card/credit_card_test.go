package creditcard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
	"github.com/finance-dashboard/backend/internal/integration/persistence/persistencetest"
)

func cardCode(t *testing.T, err error) domainerror.CreditCardErrorCode {
	t.Helper()
	var cardErr *domainerror.CreditCardError
	require.True(t, errors.As(err, &cardErr), "expected CreditCardError, got %v", err)
	return cardErr.Code
}

func TestCreditCards(t *testing.T) {
	ctx := context.Background()
	db := persistencetest.NewDB(t)
	user := entity.NewUser(uuid.NewString()+"@example.com", "Ana", "hash", time.Now().UTC())
	require.NoError(t, persistence.NewUserRepository(db).Create(ctx, user))
	repo := persistence.NewCreditCardRepository(db)

	create := NewCreateCreditCardUseCase(repo)
	out, err := create.Execute(ctx, CreateCreditCardInput{UserID: user.ID, Name: " Nubank ", LastDigits: "4321"})
	require.NoError(t, err)
	assert.Equal(t, "Nubank", out.CreditCard.Name)

	tests := []struct {
		name     string
		input    CreateCreditCardInput
		wantCode domainerror.CreditCardErrorCode
	}{
		{name: "three digits", input: CreateCreditCardInput{Name: "Inter", LastDigits: "123"}, wantCode: domainerror.ErrCodeInvalidLastDigits},
		{name: "letters", input: CreateCreditCardInput{Name: "Inter", LastDigits: "12a4"}, wantCode: domainerror.ErrCodeInvalidLastDigits},
		{name: "missing name", input: CreateCreditCardInput{LastDigits: "1234"}, wantCode: domainerror.ErrCodeMissingCreditCardField},
		{name: "duplicate", input: CreateCreditCardInput{Name: "nubank", LastDigits: "4321"}, wantCode: domainerror.ErrCodeCreditCardExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = user.ID
			_, err := create.Execute(ctx, tt.input)
			assert.Equal(t, tt.wantCode, cardCode(t, err))
		})
	}

	list, err := NewListCreditCardsUseCase(repo).Execute(ctx, ListCreditCardsInput{UserID: user.ID})
	require.NoError(t, err)
	assert.Len(t, list.CreditCards, 1)

	del := NewDeleteCreditCardUseCase(repo)
	err = del.Execute(ctx, DeleteCreditCardInput{ID: out.CreditCard.ID, UserID: uuid.New()})
	assert.Equal(t, domainerror.ErrCodeCreditCardNotFound, cardCode(t, err))
	require.NoError(t, del.Execute(ctx, DeleteCreditCardInput{ID: out.CreditCard.ID, UserID: user.ID}))
}

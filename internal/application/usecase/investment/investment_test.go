package investment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
	"github.com/finance-dashboard/backend/internal/integration/persistence/persistencetest"
)

type stubProvider struct {
	got []string
	err error
}

func (s *stubProvider) Quotes(_ context.Context, ids []string) ([]entity.CryptoQuote, error) {
	s.got = ids
	if s.err != nil {
		return nil, s.err
	}
	quotes := make([]entity.CryptoQuote, len(ids))
	for i, id := range ids {
		quotes[i] = entity.CryptoQuote{CoinID: id, PriceBRL: decimal.NewFromInt(100)}
	}
	return quotes, nil
}

func investmentCode(t *testing.T, err error) domainerror.InvestmentErrorCode {
	t.Helper()
	var invErr *domainerror.InvestmentError
	require.True(t, errors.As(err, &invErr), "expected InvestmentError, got %v", err)
	return invErr.Code
}

func TestGetQuotes(t *testing.T) {
	provider := &stubProvider{}
	uc := NewGetQuotesUseCase(provider)

	out, err := uc.Execute(context.Background(), GetQuotesInput{CoinIDs: []string{" Ethereum", "bitcoin", "ethereum", ""}})
	require.NoError(t, err)
	assert.Equal(t, []string{"bitcoin", "ethereum"}, provider.got)
	assert.Len(t, out.Quotes, 2)
}

func TestGetQuotesValidation(t *testing.T) {
	many := make([]string, MaxCoinIDs+1)
	for i := range many {
		many[i] = fmt.Sprintf("coin-%d", i)
	}

	tests := []struct {
		name string
		ids  []string
	}{
		{name: "empty", ids: nil},
		{name: "only blanks", ids: []string{" ", ""}},
		{name: "invalid characters", ids: []string{"bit coin"}},
		{name: "too many", ids: many},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &stubProvider{}
			_, err := NewGetQuotesUseCase(provider).Execute(context.Background(), GetQuotesInput{CoinIDs: tt.ids})
			assert.Equal(t, domainerror.ErrCodeInvalidCoinIDs, investmentCode(t, err))
			assert.Nil(t, provider.got, "provider is not called")
		})
	}
}

func TestGetQuotesProviderFailure(t *testing.T) {
	upstream := errors.New("503 service unavailable")
	_, err := NewGetQuotesUseCase(&stubProvider{err: upstream}).Execute(context.Background(), GetQuotesInput{CoinIDs: []string{"bitcoin"}})
	assert.Equal(t, domainerror.ErrCodeQuoteProviderUnavailable, investmentCode(t, err))
	assert.ErrorIs(t, err, upstream)
}

func TestInvestmentLifecycle(t *testing.T) {
	ctx := context.Background()
	db := persistencetest.NewDB(t)
	user := entity.NewUser(uuid.NewString()+"@example.com", "Ana", "hash", time.Now().UTC())
	require.NoError(t, persistence.NewUserRepository(db).Create(ctx, user))
	repo := persistence.NewInvestmentRepository(db)

	date := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	create := NewCreateInvestmentUseCase(repo)
	btc, err := create.Execute(ctx, CreateInvestmentInput{UserID: user.ID, Fields: Fields{
		Type: "cripto", Name: "Bitcoin", Amount: decimal.NewFromInt(1000), Date: date, IsCrypto: true,
	}})
	require.NoError(t, err)
	_, err = create.Execute(ctx, CreateInvestmentInput{UserID: user.ID, Fields: Fields{
		Type: "renda fixa", Name: "CDB", Amount: decimal.NewFromInt(5000), Date: date,
	}})
	require.NoError(t, err)

	_, err = create.Execute(ctx, CreateInvestmentInput{UserID: user.ID, Fields: Fields{Type: "x", Name: "y", Date: date}})
	assert.Equal(t, domainerror.ErrCodeInvalidInvestmentAmount, investmentCode(t, err))

	list, err := NewListInvestmentsUseCase(repo).Execute(ctx, ListInvestmentsInput{UserID: user.ID})
	require.NoError(t, err)
	assert.Len(t, list.Investments, 2)
	assert.Equal(t, "6000", list.Total.String())
	assert.Equal(t, "1000", list.CryptoTotal.String())

	updated, err := NewUpdateInvestmentUseCase(repo).Execute(ctx, UpdateInvestmentInput{
		ID: btc.Investment.ID, UserID: user.ID,
		Fields: Fields{Type: "cripto", Name: "Bitcoin", Amount: decimal.NewFromInt(1500), Date: date, IsCrypto: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "1500", updated.Investment.Amount.String())

	err = NewDeleteInvestmentUseCase(repo).Execute(ctx, DeleteInvestmentInput{ID: btc.Investment.ID, UserID: uuid.New()})
	assert.Equal(t, domainerror.ErrCodeInvestmentNotFound, investmentCode(t, err))
	require.NoError(t, NewDeleteInvestmentUseCase(repo).Execute(ctx, DeleteInvestmentInput{ID: btc.Investment.ID, UserID: user.ID}))
}

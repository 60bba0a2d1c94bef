package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
	"github.com/finance-dashboard/backend/internal/integration/persistence/persistencetest"
)

type recordingObserver struct {
	calls [][]valueobject.Period
}

func (o *recordingObserver) ExpensesChanged(_ context.Context, _ uuid.UUID, periods []valueobject.Period) {
	o.calls = append(o.calls, periods)
}

// failingExpenseRepo fails every Create after the first `allow` calls.
type failingExpenseRepo struct {
	adapter.ExpenseRepository
	allow int
	calls int
}

func (r *failingExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	r.calls++
	if r.calls > r.allow {
		return errors.New("connection reset")
	}
	return r.ExpenseRepository.Create(ctx, e)
}

type fixture struct {
	db        *gorm.DB
	user      *entity.User
	expenses  adapter.ExpenseRepository
	cards     adapter.CreditCardRepository
	observer  *recordingObserver
	create    *CreateExpenseUseCase
	recurring *CreateRecurringExpenseUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := persistencetest.NewDB(t)

	f := &fixture{
		db:       db,
		expenses: persistence.NewExpenseRepository(db),
		cards:    persistence.NewCreditCardRepository(db),
		observer: &recordingObserver{},
	}
	f.user = f.newUser(t)
	f.recurring = NewCreateRecurringExpenseUseCase(persistence.NewRecurringExpenseRepository(db), f.expenses, f.cards, f.observer)
	f.create = NewCreateExpenseUseCase(f.expenses, f.cards, f.recurring, f.observer)
	return f
}

func (f *fixture) newUser(t *testing.T) *entity.User {
	t.Helper()
	user := entity.NewUser(uuid.NewString()+"@example.com", "Ana", "hash", time.Now().UTC())
	require.NoError(t, persistence.NewUserRepository(f.db).Create(context.Background(), user))
	return user
}

func (f *fixture) newCard(t *testing.T, userID uuid.UUID) *entity.CreditCard {
	t.Helper()
	card := entity.NewCreditCard(userID, "Nubank", "1234")
	require.NoError(t, f.cards.Create(context.Background(), card))
	return card
}

func expenseCode(t *testing.T, err error) domainerror.ExpenseErrorCode {
	t.Helper()
	var expErr *domainerror.ExpenseError
	require.True(t, errors.As(err, &expErr), "expected ExpenseError, got %v", err)
	return expErr.Code
}

func intPtr(v int) *int { return &v }

func TestCreateExpenseSinglePayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.create.Execute(ctx, CreateExpenseInput{
		UserID:        f.user.ID,
		Category:      "  alimentação ",
		Amount:        decimal.RequireFromString("42.499"),
		PaymentMethod: entity.PaymentMethodPix,
		Installments:  intPtr(3),
		Date:          time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, out.Expenses, 1)
	assert.Nil(t, out.Template)

	e := out.Expenses[0]
	assert.Equal(t, "alimentação", e.Category)
	assert.Equal(t, "42.5", e.Amount.String())
	assert.Nil(t, e.Installments, "installments are only kept for credit")

	require.Len(t, f.observer.calls, 1)
	assert.Equal(t, []valueobject.Period{valueobject.NewPeriod(2025, time.March)}, f.observer.calls[0])
}

func TestCreateExpenseInstallments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	card := f.newCard(t, f.user.ID)

	out, err := f.create.Execute(ctx, CreateExpenseInput{
		UserID:        f.user.ID,
		Category:      "eletrônicos",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: entity.PaymentMethodCredit,
		Installments:  intPtr(3),
		CreditCardID:  &card.ID,
		Date:          time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, out.Expenses, 3)

	stored, err := f.expenses.FindByUser(ctx, f.user.ID, adapter.ExpenseFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	assert.Equal(t, "33.34", out.Expenses[2].Amount.String())
	assert.Equal(t, time.January, out.Expenses[1].Date.Month())
	assert.Equal(t, 31, out.Expenses[1].Date.Day())
	assert.Equal(t, 2026, out.Expenses[2].Date.Year())
	assert.Equal(t, time.February, out.Expenses[2].Date.Month())
	assert.Equal(t, 28, out.Expenses[2].Date.Day())
	require.Len(t, f.observer.calls, 1)
	assert.Len(t, f.observer.calls[0], 3)
}

func TestCreateExpenseFixed(t *testing.T) {
	f := newFixture(t)

	out, err := f.create.Execute(context.Background(), CreateExpenseInput{
		UserID:        f.user.ID,
		Category:      "moradia",
		Amount:        decimal.NewFromInt(1200),
		PaymentMethod: entity.PaymentMethodBoleto,
		Date:          time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC),
		Fixed:         true,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Template)
	require.Len(t, out.Expenses, 3)

	wantDays := []int{31, 30, 31}
	for i, e := range out.Expenses {
		assert.True(t, e.Fixed)
		assert.Equal(t, wantDays[i], e.Date.Day())
		require.NotNil(t, e.RecurringExpenseID)
		assert.Equal(t, out.Template.ID, *e.RecurringExpenseID)
	}
}

func TestCreateExpenseFixedRejectsInstallments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	card := f.newCard(t, f.user.ID)

	out, err := f.create.Execute(ctx, CreateExpenseInput{
		UserID:        f.user.ID,
		Category:      "academia",
		Amount:        decimal.NewFromInt(300),
		PaymentMethod: entity.PaymentMethodCredit,
		Installments:  intPtr(3),
		CreditCardID:  &card.ID,
		Date:          time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC),
		Fixed:         true,
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, domainerror.ErrCodeInvalidInstallments, expenseCode(t, err))

	templates, err := persistence.NewRecurringExpenseRepository(f.db).FindByUser(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, templates)
	stored, err := f.expenses.FindByUser(ctx, f.user.ID, adapter.ExpenseFilter{})
	require.NoError(t, err)
	assert.Empty(t, stored)

	out, err = f.create.Execute(ctx, CreateExpenseInput{
		UserID:        f.user.ID,
		Category:      "academia",
		Amount:        decimal.NewFromInt(100),
		PaymentMethod: entity.PaymentMethodCredit,
		Installments:  intPtr(1),
		CreditCardID:  &card.ID,
		Date:          time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC),
		Fixed:         true,
	})
	require.NoError(t, err)
	require.Len(t, out.Expenses, 2)
	for _, e := range out.Expenses {
		assert.Nil(t, e.InstallmentNumber)
		assert.False(t, e.IsInstallmentPlan())
	}
}

func TestCreateRecurringExpensePartialFailure(t *testing.T) {
	f := newFixture(t)
	repo := &failingExpenseRepo{ExpenseRepository: f.expenses, allow: 2}
	uc := NewCreateRecurringExpenseUseCase(persistence.NewRecurringExpenseRepository(f.db), repo, f.cards, f.observer)

	out, err := uc.Execute(context.Background(), CreateRecurringExpenseInput{
		UserID:        f.user.ID,
		Category:      "moradia",
		Amount:        decimal.NewFromInt(900),
		PaymentMethod: entity.PaymentMethodPix,
		StartDate:     time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.Equal(t, domainerror.ErrCodePartialMaterialization, expenseCode(t, err))
	assert.ErrorIs(t, err, domainerror.ErrPartialMaterialization)

	require.NotNil(t, out)
	assert.Len(t, out.Expenses, 2)

	stored, err := f.expenses.FindByUser(context.Background(), f.user.ID, adapter.ExpenseFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 2, "stored records are kept")
}

func TestCreateExpenseValidation(t *testing.T) {
	f := newFixture(t)
	otherCard := f.newCard(t, f.newUser(t).ID)
	date := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    CreateExpenseInput
		wantCode domainerror.ExpenseErrorCode
	}{
		{
			name:     "zero amount",
			input:    CreateExpenseInput{Category: "lazer", Amount: decimal.Zero, PaymentMethod: entity.PaymentMethodCash, Date: date},
			wantCode: domainerror.ErrCodeInvalidExpenseAmount,
		},
		{
			name:     "blank category",
			input:    CreateExpenseInput{Category: "  ", Amount: decimal.NewFromInt(1), PaymentMethod: entity.PaymentMethodCash, Date: date},
			wantCode: domainerror.ErrCodeExpenseCategoryRequired,
		},
		{
			name:     "unknown payment method",
			input:    CreateExpenseInput{Category: "lazer", Amount: decimal.NewFromInt(1), PaymentMethod: "cheque", Date: date},
			wantCode: domainerror.ErrCodeInvalidPaymentMethod,
		},
		{
			name:     "missing date",
			input:    CreateExpenseInput{Category: "lazer", Amount: decimal.NewFromInt(1), PaymentMethod: entity.PaymentMethodCash},
			wantCode: domainerror.ErrCodeInvalidExpenseDate,
		},
		{
			name: "too many installments",
			input: CreateExpenseInput{
				Category: "lazer", Amount: decimal.NewFromInt(1), PaymentMethod: entity.PaymentMethodCredit,
				Installments: intPtr(MaxInstallments + 1), Date: date,
			},
			wantCode: domainerror.ErrCodeInvalidInstallments,
		},
		{
			name: "card of another user",
			input: CreateExpenseInput{
				Category: "lazer", Amount: decimal.NewFromInt(1), PaymentMethod: entity.PaymentMethodCredit,
				CreditCardID: &otherCard.ID, Date: date,
			},
			wantCode: domainerror.ErrCodeExpenseCardNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = f.user.ID
			_, err := f.create.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, expenseCode(t, err))
		})
	}
	assert.Empty(t, f.observer.calls)
}

func TestUpdateExpenseNotifiesBothMonths(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.create.Execute(ctx, CreateExpenseInput{
		UserID:        f.user.ID,
		Category:      "lazer",
		Amount:        decimal.NewFromInt(80),
		PaymentMethod: entity.PaymentMethodDebit,
		Date:          time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	update := NewUpdateExpenseUseCase(f.expenses, f.cards, f.observer)
	out, err := update.Execute(ctx, UpdateExpenseInput{
		ID:            created.Expenses[0].ID,
		UserID:        f.user.ID,
		Category:      "transporte",
		Amount:        decimal.NewFromInt(95),
		PaymentMethod: entity.PaymentMethodDebit,
		Date:          time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "transporte", out.Expense.Category)

	require.Len(t, f.observer.calls, 2)
	assert.ElementsMatch(t, []valueobject.Period{
		valueobject.NewPeriod(2025, time.March),
		valueobject.NewPeriod(2025, time.April),
	}, f.observer.calls[1])
}

func TestExpenseOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	intruder := f.newUser(t)

	created, err := f.create.Execute(ctx, CreateExpenseInput{
		UserID:        f.user.ID,
		Category:      "lazer",
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: entity.PaymentMethodCash,
		Date:          time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	id := created.Expenses[0].ID

	err = NewDeleteExpenseUseCase(f.expenses, f.observer).Execute(ctx, DeleteExpenseInput{ID: id, UserID: intruder.ID})
	assert.Equal(t, domainerror.ErrCodeExpenseNotFound, expenseCode(t, err))

	err = NewDeleteExpenseUseCase(f.expenses, f.observer).Execute(ctx, DeleteExpenseInput{ID: id, UserID: f.user.ID})
	require.NoError(t, err)

	list, err := NewListExpensesUseCase(f.expenses).Execute(ctx, ListExpensesInput{UserID: f.user.ID})
	require.NoError(t, err)
	assert.Empty(t, list.Expenses)
	assert.True(t, list.Total.IsZero())
}

func TestListExpensesByPeriod(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, d := range []time.Time{
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	} {
		_, err := f.create.Execute(ctx, CreateExpenseInput{
			UserID: f.user.ID, Category: "lazer", Amount: decimal.NewFromInt(10),
			PaymentMethod: entity.PaymentMethodCash, Date: d,
		})
		require.NoError(t, err)
	}

	march := valueobject.NewPeriod(2025, time.March)
	out, err := NewListExpensesUseCase(f.expenses).Execute(ctx, ListExpensesInput{UserID: f.user.ID, Period: &march})
	require.NoError(t, err)
	assert.Len(t, out.Expenses, 2)
	assert.Equal(t, "20", out.Total.String())
}

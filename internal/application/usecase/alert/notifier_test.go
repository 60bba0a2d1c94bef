package alert

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/ledger"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
	"github.com/finance-dashboard/backend/internal/integration/cache"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
	"github.com/finance-dashboard/backend/internal/integration/persistence/persistencetest"
)

type captureEmails struct {
	alerts []adapter.QueueThresholdAlertInput
}

func (c *captureEmails) QueuePasswordResetEmail(context.Context, adapter.QueuePasswordResetInput) error {
	return nil
}

func (c *captureEmails) QueueThresholdAlertEmail(_ context.Context, input adapter.QueueThresholdAlertInput) error {
	c.alerts = append(c.alerts, input)
	return nil
}

type notifierFixture struct {
	db       *gorm.DB
	user     *entity.User
	expenses adapter.ExpenseRepository
	emails   *captureEmails
	notifier *Notifier
}

func newNotifierFixture(t *testing.T, policy ledger.Policy) *notifierFixture {
	t.Helper()
	ctx := context.Background()
	db := persistencetest.NewDB(t)

	f := &notifierFixture{
		db:       db,
		expenses: persistence.NewExpenseRepository(db),
		emails:   &captureEmails{},
	}

	users := persistence.NewUserRepository(db)
	f.user = entity.NewUser(uuid.NewString()+"@example.com", "Ana", "hash", time.Now().UTC())
	require.NoError(t, users.Create(ctx, f.user))

	thresholds := persistence.NewThresholdRepository(db)
	require.NoError(t, thresholds.Replace(ctx, f.user.ID, entity.Thresholds{"alimentação": decimal.NewFromInt(500)}))

	f.notifier = NewNotifier(
		users,
		f.expenses,
		thresholds,
		persistence.NewAlertNotificationRepository(db),
		f.emails,
		cache.NewNoop(),
		ledger.NewEvaluator(policy, decimal.NewFromFloat(0.9)),
		true,
	)
	return f
}

func (f *notifierFixture) spend(t *testing.T, amount int64, day int) valueobject.Period {
	t.Helper()
	date := time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
	e := entity.NewExpense(f.user.ID, "alimentação", "", decimal.NewFromInt(amount), entity.PaymentMethodPix, nil, nil, "", date)
	require.NoError(t, f.expenses.Create(context.Background(), e))
	return valueobject.PeriodOf(date)
}

func TestNotifierSendsOncePerCategoryAndMonth(t *testing.T) {
	f := newNotifierFixture(t, ledger.PolicyExceeded)
	ctx := context.Background()

	p := f.spend(t, 400, 2)
	f.notifier.ExpensesChanged(ctx, f.user.ID, []valueobject.Period{p})
	assert.Empty(t, f.emails.alerts, "still under the limit")

	p = f.spend(t, 150, 3)
	f.notifier.ExpensesChanged(ctx, f.user.ID, []valueobject.Period{p})
	require.Len(t, f.emails.alerts, 1)

	sent := f.emails.alerts[0]
	assert.Equal(t, f.user.Email, sent.UserEmail)
	assert.Equal(t, "2025-03", sent.Period)
	require.Len(t, sent.Alerts, 1)
	assert.Equal(t, "alimentação", sent.Alerts[0].Category)
	assert.Equal(t, "550.00", sent.Alerts[0].Total)
	assert.Equal(t, "50.00", sent.Alerts[0].Excess)

	p = f.spend(t, 100, 4)
	f.notifier.ExpensesChanged(ctx, f.user.ID, []valueobject.Period{p})
	assert.Len(t, f.emails.alerts, 1, "the same month is not notified twice")
}

func TestNotifierNearLimitPolicy(t *testing.T) {
	f := newNotifierFixture(t, ledger.PolicyNearLimit)

	p := f.spend(t, 450, 2)
	f.notifier.ExpensesChanged(context.Background(), f.user.ID, []valueobject.Period{p})
	assert.Len(t, f.emails.alerts, 1)
}

func TestNotifierRespectsUserPreference(t *testing.T) {
	f := newNotifierFixture(t, ledger.PolicyExceeded)
	ctx := context.Background()

	f.user.ThresholdAlerts = false
	require.NoError(t, persistence.NewUserRepository(f.db).Update(ctx, f.user))

	p := f.spend(t, 900, 2)
	f.notifier.ExpensesChanged(ctx, f.user.ID, []valueobject.Period{p})
	assert.Empty(t, f.emails.alerts)
}

func TestNotifierInvalidatesCache(t *testing.T) {
	f := newNotifierFixture(t, ledger.PolicyExceeded)
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient("redis://"+mr.Addr(), "", 0)
	require.NoError(t, err)
	redisCache := cache.NewRedisCache(client)
	f.notifier.cache = redisCache

	key := adapter.CacheKey(adapter.CacheResourceSummary, f.user.ID, "2025-03")
	require.NoError(t, redisCache.Set(ctx, key, map[string]string{"stale": "yes"}, time.Minute))

	f.notifier.ExpensesChanged(ctx, f.user.ID, nil)
	assert.False(t, mr.Exists(key))
}

func TestListAlerts(t *testing.T) {
	f := newNotifierFixture(t, ledger.PolicyExceeded)
	f.spend(t, 620, 5)

	uc := NewListAlertsUseCase(
		f.expenses,
		persistence.NewThresholdRepository(f.db),
		cache.NewNoop(),
		ledger.NewEvaluator(ledger.PolicyExceeded, decimal.NewFromFloat(0.9)),
		time.Minute,
	)

	out, err := uc.Execute(context.Background(), ListAlertsInput{UserID: f.user.ID, Period: valueobject.NewPeriod(2025, time.March)})
	require.NoError(t, err)
	assert.Equal(t, "exceeded", out.Policy)
	require.Len(t, out.Alerts, 1)
	assert.Equal(t, "120", out.Alerts[0].Excess.String())

	out, err = uc.Execute(context.Background(), ListAlertsInput{UserID: f.user.ID, Period: valueobject.NewPeriod(2025, time.April)})
	require.NoError(t, err)
	assert.Empty(t, out.Alerts)
}

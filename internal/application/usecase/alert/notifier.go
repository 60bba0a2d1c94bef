// Package alert contains threshold alert use cases.
package alert

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	"github.com/finance-dashboard/backend/internal/domain/ledger"
	"github.com/finance-dashboard/backend/internal/domain/valueobject"
)

// Notifier reacts to expense writes: it drops the user's cached summaries
// and emails categories that started alerting in the touched months.
type Notifier struct {
	userRepo      adapter.UserRepository
	expenseRepo   adapter.ExpenseRepository
	thresholdRepo adapter.ThresholdRepository
	alertRepo     adapter.AlertNotificationRepository
	emailService  adapter.EmailService
	cache         adapter.SummaryCache
	evaluator     ledger.Evaluator
	emailsEnabled bool
}

// NewNotifier creates a new Notifier.
func NewNotifier(
	userRepo adapter.UserRepository,
	expenseRepo adapter.ExpenseRepository,
	thresholdRepo adapter.ThresholdRepository,
	alertRepo adapter.AlertNotificationRepository,
	emailService adapter.EmailService,
	cache adapter.SummaryCache,
	evaluator ledger.Evaluator,
	emailsEnabled bool,
) *Notifier {
	return &Notifier{
		userRepo:      userRepo,
		expenseRepo:   expenseRepo,
		thresholdRepo: thresholdRepo,
		alertRepo:     alertRepo,
		emailService:  emailService,
		cache:         cache,
		evaluator:     evaluator,
		emailsEnabled: emailsEnabled,
	}
}

// ExpensesChanged implements adapter.ExpenseObserver. Failures are logged, never returned.
func (n *Notifier) ExpensesChanged(ctx context.Context, userID uuid.UUID, periods []valueobject.Period) {
	if err := n.cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate cached summaries", "user_id", userID, "error", err)
	}

	if !n.emailsEnabled || len(periods) == 0 {
		return
	}

	user, err := n.userRepo.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("Failed to load user for threshold alerts", "user_id", userID, "error", err)
		return
	}
	if !user.WantsThresholdAlerts() {
		return
	}

	thresholds, err := n.thresholdRepo.Get(ctx, userID)
	if err != nil {
		slog.Warn("Failed to load thresholds for alerts", "user_id", userID, "error", err)
		return
	}
	if len(thresholds) == 0 {
		return
	}

	for _, period := range periods {
		n.notifyPeriod(ctx, user, thresholds, period)
	}
}

func (n *Notifier) notifyPeriod(ctx context.Context, user *entity.User, thresholds entity.Thresholds, period valueobject.Period) {
	logger := slog.With("user_id", user.ID, "period", period.String())

	start, end := period.Start(), period.End()
	expenses, err := n.expenseRepo.FindByUser(ctx, user.ID, adapter.ExpenseFilter{StartDate: &start, EndDate: &end})
	if err != nil {
		logger.Warn("Failed to load expenses for alerts", "error", err)
		return
	}

	alerts := n.evaluator.Evaluate(expenses, thresholds)
	if len(alerts) == 0 {
		return
	}

	lines := make([]entity.ThresholdAlertRow, 0, len(alerts))
	for _, a := range alerts {
		notification := entity.NewAlertNotification(user.ID, a.Category, period.String(), string(n.evaluator.Policy()), a.Total, a.Limit)
		created, err := n.alertRepo.Record(ctx, notification)
		if err != nil {
			logger.Warn("Failed to record alert notification", "category", a.Category, "error", err)
			continue
		}
		if !created {
			continue
		}
		lines = append(lines, entity.ThresholdAlertRow{
			Category: a.Category,
			Total:    a.Total.StringFixed(2),
			Limit:    a.Limit.StringFixed(2),
			Excess:   a.Excess.StringFixed(2),
			Percent:  a.Percent.String(),
		})
	}

	if len(lines) == 0 {
		return
	}

	err = n.emailService.QueueThresholdAlertEmail(ctx, adapter.QueueThresholdAlertInput{
		UserEmail: user.Email,
		UserName:  user.Name,
		Period:    period.String(),
		Alerts:    lines,
	})
	if err != nil {
		logger.Warn("Failed to queue alert email", "error", err)
		return
	}

	logger.Info("Threshold alert email queued", "categories", len(lines))
}

var _ adapter.ExpenseObserver = (*Notifier)(nil)

// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/application/usecase/alert"
	"github.com/finance-dashboard/backend/internal/application/usecase/auth"
	"github.com/finance-dashboard/backend/internal/application/usecase/category"
	creditcard "github.com/finance-dashboard/backend/internal/application/usecase/credit_card"
	"github.com/finance-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/finance-dashboard/backend/internal/application/usecase/expense"
	"github.com/finance-dashboard/backend/internal/application/usecase/income"
	"github.com/finance-dashboard/backend/internal/application/usecase/investment"
	"github.com/finance-dashboard/backend/internal/application/usecase/threshold"
	"github.com/finance-dashboard/backend/internal/domain/ledger"
	"github.com/finance-dashboard/backend/internal/infra/db"
	"github.com/finance-dashboard/backend/internal/infra/server/router"
	"github.com/finance-dashboard/backend/internal/integration/adapters"
	"github.com/finance-dashboard/backend/internal/integration/cache"
	"github.com/finance-dashboard/backend/internal/integration/email"
	"github.com/finance-dashboard/backend/internal/integration/email/templates"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-dashboard/backend/internal/integration/persistence"
	"github.com/finance-dashboard/backend/internal/integration/pricing"
)

// Injector holds all application dependencies.
type Injector struct {
	Config           *config.Config
	Database         *db.Database
	Router           *router.Router
	EmailWorker      *email.Worker
	LoginRateLimiter *middleware.RateLimiter
	SessionJanitor   *adapters.SessionJanitor

	redisClient *redis.Client
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(ctx context.Context, cfg *config.Config, database *db.Database) (*Injector, error) {
	gormDB := database.DB()

	policy, err := ledger.ParsePolicy(cfg.Alerts.Policy)
	if err != nil {
		return nil, fmt.Errorf("invalid ALERT_POLICY: %w", err)
	}
	evaluator := ledger.NewEvaluator(policy, decimal.NewFromFloat(cfg.Alerts.NearLimitRatio))

	inj := &Injector{Config: cfg, Database: database}
	summaryCache := inj.newCache(ctx)

	// Create repositories
	userRepo := persistence.NewUserRepository(gormDB)
	sessionRepo := persistence.NewSessionRepository(gormDB)
	categoryRepo := persistence.NewCategoryRepository(gormDB)
	cardRepo := persistence.NewCreditCardRepository(gormDB)
	expenseRepo := persistence.NewExpenseRepository(gormDB)
	recurringRepo := persistence.NewRecurringExpenseRepository(gormDB)
	incomeRepo := persistence.NewIncomeRepository(gormDB)
	investmentRepo := persistence.NewInvestmentRepository(gormDB)
	thresholdRepo := persistence.NewThresholdRepository(gormDB)
	alertRepo := persistence.NewAlertNotificationRepository(gormDB)
	emailQueueRepo := persistence.NewEmailQueueRepository(gormDB)

	// Create adapters/services
	passwordService := adapters.NewPasswordService(cfg.Auth.PasswordCost)
	tokenService := adapters.NewTokenService(cfg.Auth.Secret, adapters.TokenLifetimes{
		Access:     cfg.Auth.AccessTokenExpiry,
		Refresh:    cfg.Auth.RefreshTokenExpiry,
		RememberMe: cfg.Auth.RememberMeExpiry,
		Reset:      cfg.Auth.ResetTokenExpiry,
	}, sessionRepo)
	inj.SessionJanitor = adapters.NewSessionJanitor(sessionRepo, cfg.Auth.SessionPurgeEvery)
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)
	quotes := pricing.NewCachedProvider(
		pricing.NewCoinGeckoClient(cfg.Pricing.CoinGeckoBaseURL, cfg.Pricing.Timeout),
		summaryCache,
		cfg.Pricing.CacheTTL,
	)
	rates := pricing.NewCachedRates(
		pricing.NewBCBClient(cfg.Pricing.BCBBaseURL, cfg.Pricing.Timeout),
		summaryCache,
		cfg.Pricing.RateCacheTTL,
	)

	if cfg.Email.WorkerEnabled {
		worker, err := newEmailWorker(cfg, emailQueueRepo)
		if err != nil {
			return nil, err
		}
		inj.EmailWorker = worker
	}

	notifier := alert.NewNotifier(
		userRepo,
		expenseRepo,
		thresholdRepo,
		alertRepo,
		emailService,
		summaryCache,
		evaluator,
		cfg.Alerts.EmailsEnabled,
	)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, categoryRepo, thresholdRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, tokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, tokenService)
	getProfileUseCase := auth.NewGetProfileUseCase(userRepo)
	updateSettingsUseCase := auth.NewUpdateSettingsUseCase(userRepo)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService, summaryCache)

	// Create expense use cases
	createRecurringUseCase := expense.NewCreateRecurringExpenseUseCase(recurringRepo, expenseRepo, cardRepo, notifier)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, cardRepo, createRecurringUseCase, notifier)

	settings := dashboard.Settings{
		ForecastDays:      cfg.Dashboard.ForecastDays,
		IncomeMonthlyGoal: decimal.NewFromFloat(cfg.Dashboard.IncomeMonthlyGoal),
		CacheTTL:          cfg.Redis.CacheTTL,
	}

	controllers := router.Controllers{
		Health: controller.NewHealthController(database.Ping, cacheHealthChecker(inj.redisClient, summaryCache)),
		Auth: controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
			forgotPasswordUseCase,
			resetPasswordUseCase,
		),
		User: controller.NewUserController(getProfileUseCase, updateSettingsUseCase, deleteAccountUseCase),
		Expense: controller.NewExpenseController(
			expense.NewListExpensesUseCase(expenseRepo),
			createExpenseUseCase,
			expense.NewUpdateExpenseUseCase(expenseRepo, cardRepo, notifier),
			expense.NewDeleteExpenseUseCase(expenseRepo, notifier),
			expense.NewListRecurringExpensesUseCase(recurringRepo),
			createRecurringUseCase,
		),
		Income: controller.NewIncomeController(
			income.NewListIncomesUseCase(incomeRepo),
			income.NewCreateIncomeUseCase(incomeRepo, summaryCache),
			income.NewUpdateIncomeUseCase(incomeRepo, summaryCache),
			income.NewDeleteIncomeUseCase(incomeRepo, summaryCache),
		),
		Investment: controller.NewInvestmentController(
			investment.NewListInvestmentsUseCase(investmentRepo),
			investment.NewCreateInvestmentUseCase(investmentRepo),
			investment.NewUpdateInvestmentUseCase(investmentRepo),
			investment.NewDeleteInvestmentUseCase(investmentRepo),
			investment.NewGetQuotesUseCase(quotes),
			investment.NewSimulateUseCase(rates, quotes),
		),
		Category: controller.NewCategoryController(
			category.NewListCategoriesUseCase(categoryRepo),
			category.NewCreateCategoryUseCase(categoryRepo),
			category.NewUpdateCategoryUseCase(categoryRepo),
			category.NewDeleteCategoryUseCase(categoryRepo),
		),
		CreditCard: controller.NewCreditCardController(
			creditcard.NewListCreditCardsUseCase(cardRepo),
			creditcard.NewCreateCreditCardUseCase(cardRepo),
			creditcard.NewDeleteCreditCardUseCase(cardRepo),
		),
		Threshold: controller.NewThresholdController(
			threshold.NewGetThresholdsUseCase(thresholdRepo),
			threshold.NewReplaceThresholdsUseCase(thresholdRepo, summaryCache),
			alert.NewListAlertsUseCase(expenseRepo, thresholdRepo, summaryCache, evaluator, cfg.Redis.CacheTTL),
		),
		Dashboard: controller.NewDashboardController(
			dashboard.NewGetSummaryUseCase(expenseRepo, incomeRepo, thresholdRepo, cardRepo, summaryCache, evaluator, settings),
			dashboard.NewGetAnnualBalanceUseCase(expenseRepo, incomeRepo, summaryCache, cfg.Redis.CacheTTL),
		),
	}

	if cfg.RateLimit.Enabled {
		inj.LoginRateLimiter = inj.newLoginRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	inj.Router = router.NewRouter(controllers, inj.LoginRateLimiter, authMiddleware)

	return inj, nil
}

// newLoginRateLimiter shares login counts through Redis when the cache
// connected, and keeps them in memory otherwise.
func (inj *Injector) newLoginRateLimiter() *middleware.RateLimiter {
	cfg := inj.Config.RateLimit
	if inj.redisClient != nil {
		return middleware.NewRedisRateLimiter(inj.redisClient, "fd:ratelimit:login:", cfg.MaxAttempts, cfg.Window)
	}
	return middleware.NewRateLimiter(cfg.MaxAttempts, cfg.Window)
}

// newCache connects to Redis when caching is enabled. An unreachable
// server degrades to the no-op cache rather than failing startup.
func (inj *Injector) newCache(ctx context.Context) adapter.SummaryCache {
	cfg := inj.Config.Redis
	if !cfg.CacheEnabled {
		slog.Info("Summary cache disabled")
		return cache.NewNoop()
	}

	client, err := cache.NewRedisClient(cfg.URL, cfg.Password, cfg.DB)
	if err != nil {
		slog.Warn("Invalid Redis configuration, caching disabled", "error", err)
		return cache.NewNoop()
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis unreachable, caching disabled", "error", err)
		_ = client.Close()
		return cache.NewNoop()
	}

	inj.redisClient = client
	slog.Info("Summary cache connected", "ttl", cfg.CacheTTL)
	return cache.NewRedisCache(client)
}

func cacheHealthChecker(client *redis.Client, c adapter.SummaryCache) controller.HealthChecker {
	if client == nil {
		return nil
	}
	return c.Ping
}

func newEmailWorker(cfg *config.Config, queue adapter.EmailQueueRepository) (*email.Worker, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	var sender adapter.EmailSender = email.NewLogSender()
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		slog.Warn("RESEND_API_KEY not set, emails will only be logged")
	}

	workerCfg := email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
		Concurrency:  cfg.Email.Concurrency,
		Lease:        cfg.Email.Lease,
		Retention:    cfg.Email.Retention,
	}
	return email.NewWorker(queue, sender, renderer, workerCfg), nil
}

// Close releases connections opened by the injector. The database is owned by the caller.
func (inj *Injector) Close() error {
	if inj.redisClient != nil {
		return inj.redisClient.Close()
	}
	return nil
}

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/infra/dependency"
	"github.com/finance-dashboard/backend/internal/infra/server/router"
	"github.com/finance-dashboard/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	quotesPath    = "/api/v3/simple/price"
)

// environment is shared by every scenario. Scenarios run sequentially.
type environment struct {
	db       *mock.Db
	redis    *mock.Redis
	quotes   *mock.ApiMock
	injector *dependency.Injector
	server   *httptest.Server
}

var env *environment

// TestContext holds the test state for each scenario.
type TestContext struct {
	client *http.Client

	// Response
	status       int
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Values captured from earlier responses, referenced as {name}
	saved map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// testConfig points the application at the in-process doubles.
func testConfig(redisURL, quotesURL string) *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Auth.Secret = testJWTSecret
	cfg.Auth.PasswordCost = bcrypt.MinCost
	cfg.Redis.URL = redisURL
	cfg.Redis.Password = ""
	cfg.Redis.DB = 0
	cfg.Redis.CacheEnabled = true
	cfg.Redis.CacheTTL = time.Minute
	cfg.Pricing.CoinGeckoBaseURL = quotesURL
	cfg.Pricing.BCBBaseURL = quotesURL
	cfg.Pricing.Timeout = 2 * time.Second
	cfg.Pricing.CacheTTL = time.Minute
	cfg.Email.WorkerEnabled = false
	cfg.Alerts.Policy = "exceeded"
	cfg.Alerts.NearLimitRatio = 0.9
	cfg.Alerts.EmailsEnabled = true
	cfg.Dashboard.IncomeMonthlyGoal = 6000
	cfg.Dashboard.ForecastDays = 31
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.MaxAttempts = 5
	cfg.RateLimit.Window = time.Minute
	return cfg
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		e := &environment{
			db:     mock.NewDb("finance_dashboard_integration"),
			redis:  mock.NewRedis(),
			quotes: mock.NewApiServer(),
		}
		e.quotes.Start()

		cfg := testConfig(e.redis.URL(), e.quotes.GetUrl())
		inj, err := dependency.NewInjector(context.Background(), cfg, e.db.Database)
		if err != nil {
			panic(fmt.Sprintf("failed to wire application: %v", err))
		}
		e.injector = inj

		engine := inj.Router.Setup(router.Options{
			Environment:  cfg.Server.Environment,
			AllowOrigins: []string{"*"},
		})
		e.server = httptest.NewServer(engine)

		env = e
	})

	ctx.AfterSuite(func() {
		if env == nil {
			return
		}
		env.server.Close()
		env.quotes.Close()
		_ = env.injector.Close()
		env.redis.Close()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := env.db.ClearDB(); err != nil {
			return ctx, err
		}
		env.redis.Clear()
		env.quotes.Reset()
		if rl := env.injector.LoginRateLimiter; rl != nil {
			rl.Reset()
		}

		tc := &TestContext{
			client:         &http.Client{Timeout: 10 * time.Second},
			requestHeaders: make(map[string]string),
			saved:          make(map[string]string),
		}
		return SetTestContext(ctx, tc), nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDataSteps(ctx)
}

// expand replaces {name} placeholders with saved values.
func (tc *TestContext) expand(s string) string {
	for k, v := range tc.saved {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}

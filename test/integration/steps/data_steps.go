package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/finance-dashboard/backend/internal/integration/pricing"
)

// registerDataSteps registers fixture and side effect steps.
func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAsWithPassword)
	ctx.Step(`^I make (\d+) failed login attempts for "([^"]*)"$`, iMakeFailedLoginAttemptsFor)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, theDbShouldContainObjectsInWithTheValues)
	ctx.Step(`^the quote provider returns:$`, theQuoteProviderReturns)
	ctx.Step(`^the quote provider is unavailable$`, theQuoteProviderIsUnavailable)
	ctx.Step(`^the quote provider should have been called (\d+) times?$`, theQuoteProviderShouldHaveBeenCalled)
	ctx.Step(`^the rate provider publishes "([^"]*)" at "([^"]*)"$`, theRateProviderPublishes)
	ctx.Step(`^quote request (\d+) should ask for "([^"]*)"$`, quoteRequestShouldAskFor)
	ctx.Step(`^the cache should contain a key starting with "([^"]*)"$`, theCacheShouldContainAKeyStartingWith)
}

func iAmRegisteredAsWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)

	body, _ := json.Marshal(map[string]any{
		"email":          email,
		"name":           strings.Split(email, "@")[0],
		"password":       password,
		"terms_accepted": true,
	})
	if err := tc.send(http.MethodPost, "/api/v1/auth/register", string(body)); err != nil {
		return err
	}
	if tc.status != http.StatusCreated {
		return fmt.Errorf("registration failed with %d: %s", tc.status, string(tc.responseBody))
	}

	for _, key := range []string{"access_token", "refresh_token", "user.id"} {
		value, err := tc.field(key)
		if err != nil {
			return err
		}
		tc.saved[strings.ReplaceAll(key, ".", "_")] = fmt.Sprintf("%v", value)
	}
	tc.accessToken = tc.saved["access_token"]
	return nil
}

func iMakeFailedLoginAttemptsFor(ctx context.Context, attempts int, email string) error {
	tc := GetTestContext(ctx)
	body, _ := json.Marshal(map[string]string{"email": email, "password": "WrongPassword1!"})

	for i := 0; i < attempts; i++ {
		if err := tc.send(http.MethodPost, "/api/v1/auth/login", string(body)); err != nil {
			return err
		}
		if tc.status != http.StatusUnauthorized {
			return fmt.Errorf("attempt %d: expected 401, got %d", i+1, tc.status)
		}
	}
	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, count int, table string) error {
	got, err := env.db.Count(table, nil)
	if err != nil {
		return err
	}
	if got != int64(count) {
		return fmt.Errorf("expected %d rows in %s, got %d", count, table, got)
	}
	return nil
}

// theDbShouldContainObjectsInWithTheValues takes a two row table: column names then values.
func theDbShouldContainObjectsInWithTheValues(ctx context.Context, count int, table string, values *godog.Table) error {
	tc := GetTestContext(ctx)
	if len(values.Rows) != 2 {
		return fmt.Errorf("expected a header row and a value row")
	}

	where := map[string]any{}
	for i, cell := range values.Rows[0].Cells {
		where[cell.Value] = tc.expand(values.Rows[1].Cells[i].Value)
	}

	got, err := env.db.Count(table, where)
	if err != nil {
		return err
	}
	if got != int64(count) {
		return fmt.Errorf("expected %d rows in %s matching %v, got %d", count, table, where, got)
	}
	return nil
}

// theQuoteProviderReturns takes rows of coin, brl and brl_24h_change.
func theQuoteProviderReturns(ctx context.Context, quotes *godog.Table) error {
	payload := map[string]any{}
	for _, row := range quotes.Rows[1:] {
		price, err := strconv.ParseFloat(row.Cells[1].Value, 64)
		if err != nil {
			return err
		}
		change, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return err
		}
		payload[row.Cells[0].Value] = map[string]float64{
			"brl":            price,
			"brl_24h_change": change,
		}
	}
	env.quotes.SetResponse(-1, http.MethodGet, quotesPath, http.StatusOK, payload)
	return nil
}

func theQuoteProviderIsUnavailable(ctx context.Context) error {
	env.quotes.SetResponse(-1, http.MethodGet, quotesPath, http.StatusServiceUnavailable, map[string]string{"error": "maintenance"})
	return nil
}

func theQuoteProviderShouldHaveBeenCalled(ctx context.Context, times int) error {
	if got := env.quotes.CallCount(http.MethodGet, quotesPath); got != times {
		return fmt.Errorf("expected %d quote requests, got %d", times, got)
	}
	return nil
}

// quoteRequestShouldAskFor checks the ids of the n-th upstream call, counting from 1.
func quoteRequestShouldAskFor(ctx context.Context, n int, ids string) error {
	query := env.quotes.GetRequestQueries(http.MethodGet, quotesPath, n-1)
	if query == nil {
		return fmt.Errorf("quote request %d was never made", n)
	}
	if query["ids"] != ids {
		return fmt.Errorf("quote request %d asked for %q, expected %q", n, query["ids"], ids)
	}
	return nil
}

func theCacheShouldContainAKeyStartingWith(ctx context.Context, prefix string) error {
	tc := GetTestContext(ctx)
	prefix = tc.expand(prefix)
	keys := env.redis.Keys()
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			return nil
		}
	}
	return fmt.Errorf("no cache key starts with %q, have %v", prefix, keys)
}

func theRateProviderPublishes(ctx context.Context, index, rate string) error {
	path, ok := pricing.SeriesPath(index)
	if !ok {
		return fmt.Errorf("no rate series for %q", index)
	}
	env.quotes.SetResponse(-1, http.MethodGet, path, http.StatusOK, []map[string]string{
		{"data": "01/09/2025", "valor": rate},
	})
	return nil
}

package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
)

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the header is empty$`, theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, theHeaderContainsTheKeyWith)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should be null$`, theResponseFieldShouldBeNull)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items?$`, theResponseFieldShouldHaveItems)
	ctx.Step(`^I save the response field "([^"]*)" as "([^"]*)"$`, iSaveTheResponseFieldAs)
}

func theAPIServerIsRunning(ctx context.Context) error {
	if env == nil || env.server == nil {
		return fmt.Errorf("test server is not running")
	}
	resp, err := http.Get(env.server.URL + "/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func theHeaderIsEmpty(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.requestHeaders = make(map[string]string)
	return nil
}

func theHeaderContainsTheKeyWith(ctx context.Context, key, value string) error {
	tc := GetTestContext(ctx)
	tc.requestHeaders[key] = tc.expand(value)
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	GetTestContext(ctx).accessToken = ""
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	return GetTestContext(ctx).send(method, endpoint, "")
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	return GetTestContext(ctx).send(method, endpoint, body.Content)
}

func (tc *TestContext) send(method, endpoint, body string) error {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(tc.expand(body))
	}

	req, err := http.NewRequest(method, env.server.URL+tc.expand(endpoint), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" && req.Header.Get("Authorization") == "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.status = resp.StatusCode
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.status, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	var js json.RawMessage
	if err := json.Unmarshal(GetTestContext(ctx).responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), tc.expand(expected)) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	value, err := tc.field(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != tc.expand(expected) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	_, err := GetTestContext(ctx).field(field)
	return err
}

func theResponseFieldShouldBeNull(ctx context.Context, field string) error {
	value, err := GetTestContext(ctx).field(field)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("field '%s' expected null, got '%v'", field, value)
	}
	return nil
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	value, err := GetTestContext(ctx).field(field)
	if err != nil {
		return err
	}

	var n int
	switch v := value.(type) {
	case []any:
		n = len(v)
	case map[string]any:
		n = len(v)
	default:
		return fmt.Errorf("field '%s' is not a collection: %v", field, value)
	}
	if n != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, n)
	}
	return nil
}

func iSaveTheResponseFieldAs(ctx context.Context, field, name string) error {
	tc := GetTestContext(ctx)
	value, err := tc.field(field)
	if err != nil {
		return err
	}
	tc.saved[name] = fmt.Sprintf("%v", value)
	return nil
}

// field walks a dotted path such as "expenses.0.amount" through the JSON body.
func (tc *TestContext) field(path string) (any, error) {
	var current any
	if err := json.Unmarshal(tc.responseBody, &current); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(tc.responseBody))
			}
			current = next
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index '%s' of '%s' out of range", part, path)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("field '%s' not found in response: %s", path, string(tc.responseBody))
		}
	}
	return current, nil
}

package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

type stubResponse struct {
	status int
	body   any
}

// ApiMock is an HTTP server returning canned JSON per method and path.
// Responses set for a call index win over the default for that route.
type ApiMock struct {
	mu              sync.Mutex
	server          *httptest.Server
	responses       map[string]map[int]stubResponse
	defaults        map[string]stubResponse
	queriesReceived map[string][]map[string]string
}

// NewApiServer creates an unstarted mock.
func NewApiServer() *ApiMock {
	a := &ApiMock{}
	a.Reset()
	return a
}

// Start begins serving on a random local port.
func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

// Close stops the server.
func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

// GetUrl returns the base URL of the running server.
func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	a.mu.Lock()
	index := len(a.queriesReceived[key])
	queries := map[string]string{}
	for k, v := range r.URL.Query() {
		queries[k] = v[0]
	}
	a.queriesReceived[key] = append(a.queriesReceived[key], queries)

	resp, ok := a.responses[key][index]
	if !ok {
		resp, ok = a.defaults[key]
	}
	a.mu.Unlock()

	if !ok {
		resp = stubResponse{status: http.StatusNotFound, body: map[string]any{"error": "not mocked"}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_ = json.NewEncoder(w).Encode(resp.body)
}

// SetResponse registers a response. An index of -1 sets the route default.
func (a *ApiMock) SetResponse(index int, method, path string, status int, body any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	if index == -1 {
		a.defaults[key] = stubResponse{status: status, body: body}
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]stubResponse{}
	}
	a.responses[key][index] = stubResponse{status: status, body: body}
}

// CallCount reports how many requests hit the route.
func (a *ApiMock) CallCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queriesReceived[method+path])
}

// GetRequestQueries returns the query string of the index-th call.
func (a *ApiMock) GetRequestQueries(method, path string, index int) map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()

	calls := a.queriesReceived[method+path]
	if index < 0 || index >= len(calls) {
		return nil
	}
	return calls[index]
}

// Reset forgets every response and recorded call.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.responses = map[string]map[int]stubResponse{}
	a.defaults = map[string]stubResponse{}
	a.queriesReceived = map[string][]map[string]string{}
}

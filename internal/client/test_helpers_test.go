package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/castore/pkg/castore"
)

// Test static errors.
var (
	ErrTestNetwork = errors.New("connection refused")
)

// fakeTransport records every request and answers with a scripted response.
type fakeTransport struct {
	mu       sync.Mutex
	requests []*castore.Request
	respond  func(req *castore.Request) (*castore.Response, error)
}

func (f *fakeTransport) RoundTrip(_ context.Context, req *castore.Request) (*castore.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.respond == nil {
		return jsonResponse(req, http.StatusOK, map[string]interface{}{}), nil
	}

	return f.respond(req)
}

func (f *fakeTransport) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}

func (f *fakeTransport) last(t *testing.T) *castore.Request {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.requests, "expected a request")

	return f.requests[len(f.requests)-1]
}

// respondJSON answers every request with status and the JSON encoding of payload.
func respondJSON(status int, payload interface{}) *fakeTransport {
	return &fakeTransport{
		respond: func(req *castore.Request) (*castore.Response, error) {
			return jsonResponse(req, status, payload), nil
		},
	}
}

func jsonResponse(req *castore.Request, status int, payload interface{}) *castore.Response {
	body, _ := json.Marshal(payload)

	return &castore.Response{
		StatusCode: status,
		StatusText: http.StatusText(status),
		URL:        req.URL,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       body,
	}
}

// captureLogger collects log entries by level.
type captureLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

func (l *captureLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *captureLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *captureLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *captureLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *captureLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func (l *captureLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0

	for _, entry := range l.entries {
		if entry.level == level {
			n++
		}
	}

	return n
}

// newTestStore builds a store over transport with an optional registry.
func newTestStore(t *testing.T, transport castore.Transport, validation castore.Registry, logger castore.Logger) *Client {
	t.Helper()

	store, err := New(&castore.Config{
		Base:       "http://store.test/data/",
		Transport:  transport,
		Validation: validation,
		Logger:     logger,
	})
	require.NoError(t, err)

	return store
}

// splitURL returns the path portion and the parsed query of a request URL.
func splitURL(t *testing.T, raw string) (string, url.Values) {
	t.Helper()

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	values, err := url.ParseQuery(parsed.RawQuery)
	require.NoError(t, err)

	return parsed.Path, values
}

// hasX accepts records carrying an "x" key.
func hasX(record castore.Record) bool {
	_, ok := record["x"]

	return ok
}

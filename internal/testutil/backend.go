// Package testutil provides a scriptable fake backend and fixtures for
// feature tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest captures one request the fake backend received.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	Body          []byte
}

// JSONBody decodes the recorded body into out.
func (r RecordedRequest) JSONBody(t *testing.T, out any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, out); err != nil {
		t.Fatalf("decode recorded body %q: %v", r.Body, err)
	}
}

// Backend is a scriptable stand-in for the career backend. Routes are
// registered per method+path; every request is recorded for assertion
// regardless of whether a route matches.
type Backend struct {
	t      *testing.T
	Server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	handlers map[string]http.HandlerFunc
}

// NewBackend starts the fake backend and shuts it down at test end.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{t: t, handlers: map[string]http.HandlerFunc{}}
	b.Server = httptest.NewServer(b)
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the backend's base URL.
func (b *Backend) URL() string { return b.Server.URL }

// Handle registers a handler for method+path (path without query).
func (b *Backend) Handle(method, path string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[method+" "+path] = h
}

// HandleJSON registers a fixed JSON response.
func (b *Backend) HandleJSON(method, path string, status int, body any) {
	b.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			if err := json.NewEncoder(w).Encode(body); err != nil {
				b.t.Errorf("encode scripted response for %s %s: %v", method, path, err)
			}
		}
	})
}

// HandleStatus registers an empty response with the given status.
func (b *Backend) HandleStatus(method, path string, status int) {
	b.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
}

func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		Body:          body,
	})
	h, ok := b.handlers[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no route scripted"}`))
		return
	}
	h(w, r)
}

// Requests returns recorded requests matching method and path; empty
// strings match anything.
func (b *Backend) Requests(method, path string) []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []RecordedRequest
	for _, req := range b.requests {
		if (method == "" || req.Method == method) && (path == "" || req.Path == path) {
			out = append(out, req)
		}
	}
	return out
}

// LastRequest returns the most recent matching request, failing the
// test when none was made.
func (b *Backend) LastRequest(method, path string) RecordedRequest {
	b.t.Helper()
	reqs := b.Requests(method, path)
	if len(reqs) == 0 {
		b.t.Fatalf("no %s %s request recorded", method, path)
	}
	return reqs[len(reqs)-1]
}

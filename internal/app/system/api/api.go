// Package api is the single point of outbound HTTP configuration.
//
// Every backend call in the client flows through one *Client: a fixed
// base address, one generous timeout (AI-generation calls on the
// backend routinely take tens of seconds), bearer-token attachment on
// the way out, and session-expiry interception on the way back.
//
// There are no retries anywhere in this layer; failures propagate to
// the calling controller.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout tolerates slow AI-generation calls on the backend.
const DefaultTimeout = 60 * time.Second

// TokenStore is what the adapter needs from session persistence: the
// current bearer token (empty when logged out) and a way to wipe it.
type TokenStore interface {
	Token() string
	Clear() error
}

// Clearer is any local cache that must be wiped alongside the session
// when the backend reports the session expired.
type Clearer interface {
	Clear() error
}

// Config holds the adapter's settings.
type Config struct {
	BaseURL string        // e.g. "http://localhost:8080"
	Timeout time.Duration // zero means DefaultTimeout
}

// Client is the configured request/response pipeline.
type Client struct {
	base *url.URL
	http *http.Client
	tr   *transport
	log  *zap.Logger
}

// New builds a Client. Requests carry a bearer token whenever the
// session store holds one. A 401 response clears the session store and
// every supplied cache before the caller sees the error; a 403 is
// logged and otherwise left to the caller (see OnSessionExpired for
// why the two are handled differently).
func New(cfg Config, sessions TokenStore, logger *zap.Logger, caches ...Clearer) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	tr := newTransport(sessions, caches, logger)
	return &Client{
		base: base,
		http: &http.Client{Transport: tr, Timeout: timeout},
		tr:   tr,
		log:  logger,
	}, nil
}

// OnSessionExpired registers a hook invoked exactly once per 401
// response, after local session state has been cleared. The CLI uses
// it to tell the user to log in again; a UI would navigate to the
// login screen.
//
// 403 responses never trigger this. An earlier iteration treated any
// permission error as an expired session, which logged users out in a
// loop whenever one enrichment call was forbidden.
func (c *Client) OnSessionExpired(hook func()) {
	c.tr.onExpired = hook
}

// Get issues a GET and decodes a JSON body into out (out may be nil).
// An empty 2xx body leaves out untouched.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body (body may be nil).
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	rel, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse request path %q: %w", path, err)
	}
	u := c.base.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, rel.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, rel.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Message: backendMessage(data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, rel.Path, err)
	}
	return nil
}

// backendMessage pulls a human-readable message out of an error body.
// The backend is inconsistent: some endpoints wrap messages in
// {"message": ...} or {"error": ...}, others return a bare string.
func backendMessage(data []byte) string {
	var wrapped struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped.Message != "" {
			return wrapped.Message
		}
		if wrapped.Error != "" {
			return wrapped.Error
		}
	}
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare
	}
	return string(bytes.TrimSpace(data))
}

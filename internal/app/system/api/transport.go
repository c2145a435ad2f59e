package api

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// transport wraps the default RoundTripper twice over: oauth2.Transport
// attaches the bearer token on the way out (skipped entirely while
// logged out, so anonymous endpoints never see a stale header), and the
// response side intercepts authentication failures before any caller
// can act on them.
type transport struct {
	sessions  TokenStore
	caches    []Clearer
	plain     http.RoundTripper
	auth      *oauth2.Transport
	onExpired func()
	log       *zap.Logger
}

func newTransport(sessions TokenStore, caches []Clearer, logger *zap.Logger) *transport {
	base := http.DefaultTransport
	return &transport{
		sessions: sessions,
		caches:   caches,
		plain:    base,
		auth: &oauth2.Transport{
			Source: sessionSource{sessions},
			Base:   base,
		},
		log: logger,
	}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt := t.plain
	if t.sessions.Token() != "" {
		rt = http.RoundTripper(t.auth)
	}

	resp, err := rt.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		t.expire(req)
	case http.StatusForbidden:
		// Deliberately not an expiry. Clearing the session here caused
		// a logout loop when a single forbidden enrichment call raced
		// the pages that depend on the token.
		t.log.Error("backend returned 403",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path))
	}
	return resp, nil
}

// expire wipes every piece of local session state exactly once per
// intercepted response, then fires the registered hook.
func (t *transport) expire(req *http.Request) {
	t.log.Warn("session expired, clearing local state",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path))

	if err := t.sessions.Clear(); err != nil {
		t.log.Error("clear session", zap.Error(err))
	}
	for _, cache := range t.caches {
		if err := cache.Clear(); err != nil {
			t.log.Error("clear cache on expiry", zap.Error(err))
		}
	}
	if t.onExpired != nil {
		t.onExpired()
	}
}

// sessionSource adapts the session store to oauth2's TokenSource so
// the stock oauth2.Transport can do the header attachment.
type sessionSource struct {
	sessions TokenStore
}

func (s sessionSource) Token() (*oauth2.Token, error) {
	return &oauth2.Token{
		AccessToken: s.sessions.Token(),
		TokenType:   "Bearer",
	}, nil
}

package testutil

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"careermate/internal/app/store/formcache"
	"careermate/internal/app/store/groups"
	"careermate/internal/app/store/session"
	"careermate/internal/app/system/api"
)

// SignedToken mints an HS256 test JWT with the given claims. The
// client never verifies signatures, but a structurally real token
// keeps the payload-decoding path honest.
func SignedToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims))
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return signed
}

// Env bundles the stores and HTTP adapter most feature tests need,
// all rooted in a per-test temp directory.
type Env struct {
	Backend  *Backend
	Sessions *session.Store
	Groups   *groups.Store
	Forms    *formcache.Store
	API      *api.Client
	Log      *zap.Logger
}

// NewEnv builds a fake backend plus a fully wired adapter and stores.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	dir := t.TempDir()

	sessions, err := session.New(dir)
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	groupStore, err := groups.New(dir)
	if err != nil {
		t.Fatalf("groups store: %v", err)
	}
	forms, err := formcache.New(dir)
	if err != nil {
		t.Fatalf("form cache: %v", err)
	}

	backend := NewBackend(t)
	logger := zap.NewNop()
	client, err := api.New(api.Config{BaseURL: backend.URL()}, sessions, logger, forms)
	if err != nil {
		t.Fatalf("api client: %v", err)
	}

	return &Env{
		Backend:  backend,
		Sessions: sessions,
		Groups:   groupStore,
		Forms:    forms,
		API:      client,
		Log:      logger,
	}
}

// LogIn stores a session as if the user had just logged in.
func (e *Env) LogIn(t *testing.T, name string) string {
	t.Helper()
	token := SignedToken(t, map[string]any{"sub": name + "@test.dev", "name": name})
	if err := e.Sessions.Save(token, name); err != nil {
		t.Fatalf("save session: %v", err)
	}
	return token
}

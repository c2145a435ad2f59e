package session_test

import (
	"testing"

	"careermate/internal/app/store/session"
)

func TestStore_SaveAndRead(t *testing.T) {
	store, err := session.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := store.Save("tok-123", "지민"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := store.Token(); got != "tok-123" {
		t.Errorf("Token = %q", got)
	}
	if got := store.Name(); got != "지민" {
		t.Errorf("Name = %q", got)
	}
}

func TestStore_EmptyWhenNeverSaved(t *testing.T) {
	store, err := session.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if store.Token() != "" || store.Name() != "" {
		t.Error("fresh store should read empty")
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store, err := session.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := store.Save("tok", "name"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if store.Token() != "" || store.Name() != "" {
		t.Error("Clear left data behind")
	}
	// A second clear (401 storms cause these) must not error.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}

func TestStore_SetNameKeepsToken(t *testing.T) {
	store, err := session.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := store.Save("tok", "old"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.SetName("new"); err != nil {
		t.Fatalf("SetName failed: %v", err)
	}
	if store.Token() != "tok" || store.Name() != "new" {
		t.Errorf("got token=%q name=%q", store.Token(), store.Name())
	}
}

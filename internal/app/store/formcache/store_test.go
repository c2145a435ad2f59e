package formcache_test

import (
	"os"
	"path/filepath"
	"testing"

	"careermate/internal/app/store/formcache"
	"careermate/internal/domain/models"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := formcache.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	in := models.Profile{Major: "컴퓨터공학", Grade: "3", TargetJob: "백엔드 개발자"}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, ok := store.Load()
	if !ok {
		t.Fatal("Load found nothing")
	}
	if out.Major != in.Major || out.TargetJob != in.TargetJob {
		t.Errorf("Load = %+v", out)
	}
}

func TestStore_LoadAbsent(t *testing.T) {
	store, err := formcache.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := store.Load(); ok {
		t.Error("fresh cache should be absent")
	}
}

func TestStore_CorruptCacheReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := formcache.New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "roadmap_form.json"), []byte("{oops"), 0o600); err != nil {
		t.Fatalf("write corrupt cache: %v", err)
	}
	if _, ok := store.Load(); ok {
		t.Error("corrupt cache should read as absent")
	}
}

func TestStore_Clear(t *testing.T) {
	store, err := formcache.New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := store.Save(models.Profile{Major: "전자공학"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok := store.Load(); ok {
		t.Error("Clear left the cache behind")
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
}

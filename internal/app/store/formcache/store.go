// internal/app/store/formcache/store.go
package formcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"careermate/internal/domain/models"
)

// Store caches half-filled roadmap form input so a restart does not
// lose it. The cache is disposable: it is wiped on logout and whenever
// the session expires.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates the form cache under dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create formcache dir: %w", err)
	}
	return &Store{path: filepath.Join(dir, "roadmap_form.json")}, nil
}

// Save replaces the cached form input.
func (s *Store) Save(form models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("encode form cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write form cache: %w", err)
	}
	return nil
}

// Load returns the cached form input and whether one exists. A corrupt
// cache reads as absent; it is a convenience, never a source of truth.
func (s *Store) Load() (models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.Profile{}, false
	}
	var form models.Profile
	if err := json.Unmarshal(data, &form); err != nil {
		return models.Profile{}, false
	}
	return form, true
}

// Clear removes the cached form input.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear form cache: %w", err)
	}
	return nil
}

// internal/app/store/groups/store.go
package groups

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

// ErrNotFound is returned when no group carries the requested id.
var ErrNotFound = errors.New("group not found")

// Store is the system of record for collaboration groups. They live
// only on this device, as one JSON document, last writer wins. A
// missing file reads as an empty list (the state of a fresh install).
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates the groups store, backed by groups.json under dir.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create groups dir: %w", err)
	}
	return &Store{path: filepath.Join(dir, "groups.json")}, nil
}

// List returns all groups in insertion order.
func (s *Store) List() ([]models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the group with the given id.
func (s *Store) Get(id int64) (models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return models.Group{}, err
	}
	for _, g := range all {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Group{}, fmt.Errorf("group %d: %w", id, ErrNotFound)
}

// Append adds a group to the end of the document.
func (s *Store) Append(g models.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(all, g))
}

// Update applies mutate to the group with the given id and persists
// the result. Mutate runs under the store lock; keep it fast.
func (s *Store) Update(id int64, mutate func(*models.Group) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if err := mutate(&all[i]); err != nil {
			return err
		}
		return s.save(all)
	}
	return fmt.Errorf("group %d: %w", id, ErrNotFound)
}

// Remove deletes the group with the given id.
func (s *Store) Remove(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, g := range all {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(all) {
		return fmt.Errorf("group %d: %w", id, ErrNotFound)
	}
	return s.save(kept)
}

// Clear wipes the whole document. Groups survive ordinary logout and
// session expiry (they belong to the device, not the account); Clear
// exists for account withdrawal.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear groups: %w", err)
	}
	return nil
}

func (s *Store) load() ([]models.Group, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read groups: %w", err)
	}
	var all []models.Group
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decode groups: %w", err)
	}
	return all, nil
}

func (s *Store) save(all []models.Group) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode groups: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write groups: %w", err)
	}
	return nil
}

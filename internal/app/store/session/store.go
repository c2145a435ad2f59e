// internal/app/store/session/store.go
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tokenFile = "token"
	nameFile  = "display_name"
)

// Store persists the bearer token and the cached display name as plain
// files under the data directory. Files are mode 0600: the token is a
// credential.
//
// Reads go to disk every time. The store is shared by the transport
// layer (which may clear it mid-request) and the controllers, and the
// cheap re-read keeps them coherent without a cache-invalidation
// protocol.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates the session store, making the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	return s.read(tokenFile)
}

// Name returns the cached display name, or "".
func (s *Store) Name() string {
	return s.read(nameFile)
}

// Save stores the token and display name of a fresh login.
func (s *Store) Save(token, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.write(tokenFile, token); err != nil {
		return err
	}
	return s.write(nameFile, name)
}

// SetName updates only the cached display name.
func (s *Store) SetName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(nameFile, name)
}

// Clear removes the token and the cached name. Missing files are not
// an error; Clear runs on every 401 and must be idempotent.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range []string{tokenFile, nameFile} {
		err := os.Remove(filepath.Join(s.dir, name))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("clear session %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) read(name string) string {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *Store) write(name, value string) error {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(value+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session %s: %w", name, err)
	}
	return nil
}

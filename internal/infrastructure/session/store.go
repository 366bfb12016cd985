// Package session persists the authenticated identity for the life of a
// login. The identity lives in a single JSON file; it is written only at
// login/registration and logout boundaries and read through an explicit
// Store handed to every consumer. No ambient globals.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/tracklyy/helpdesk-client/internal/core/domain"
)

// Store holds the current identity in memory, backed by a JSON file.
type Store struct {
	path string

	mu      sync.Mutex
	current *domain.Identity
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the session file into memory. A missing file means nobody is
// logged in and is not an error; a corrupt file is.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.current = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("session: read %s: %w", s.path, err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return fmt.Errorf("session: decode %s: %w", s.path, err)
	}
	if identity.ID == "" {
		s.current = nil
		return nil
	}
	s.current = &identity
	return nil
}

// Current returns the logged-in identity, if any.
func (s *Store) Current() (*domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}
	clone := *s.current
	return &clone, true
}

// Save persists the identity and makes it current.
func (s *Store) Save(identity *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session: encode identity: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}

	clone := *identity
	s.current = &clone
	return nil
}

// Clear removes the session file and forgets the identity. Clearing an
// empty session is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove %s: %w", s.path, err)
	}
	return nil
}

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// storageKey is the fixed key the user record is stored under, kept from the
// browser front-end this replaces (localStorage["currentUser"]).
const storageKey = "currentUser"

// Store owns the current-user record. It is the single piece of shared
// mutable state in the portal: everything else is a disposable per-request
// snapshot. The record is persisted to a JSON file so it survives restarts.
type Store struct {
	mu      sync.RWMutex
	path    string
	current *User
	logger  *slog.Logger
}

// NewStore creates a session store backed by the file at path and loads any
// persisted user record.
func NewStore(path string, logger *slog.Logger) *Store {
	s := &Store{path: path, logger: logger}
	if err := s.load(); err != nil {
		logger.Warn("could not restore persisted session", slog.String("error", err.Error()))
	}
	return s
}

func (s *Store) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var envelope map[string]*User
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("corrupt session file: %w", err)
	}
	s.current = envelope[storageKey]
	return nil
}

// Current returns a copy of the logged-in user, or nil.
func (s *Store) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// Save replaces the current user and persists it.
func (s *Store) Save(user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &user

	raw, err := json.Marshal(map[string]*User{storageKey: &user})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Clear drops the current user and removes the persisted record. Called on
// logout and when the backend answers 401/403 on a protected request.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("could not remove session file", slog.String("error", err.Error()))
	}
}

// IsAuthenticated reports whether a user is logged in.
func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// Role returns the logged-in user's role, or "" when logged out.
func (s *Store) Role() Role {
	if user := s.Current(); user != nil {
		return user.Role
	}
	return ""
}

// Token implements backend.TokenSource.
func (s *Store) Token() string {
	if user := s.Current(); user != nil {
		return user.Token
	}
	return ""
}

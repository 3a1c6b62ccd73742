package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"portfolio-backend/models"
)

// AppState is the durable UI state: who is signed in and how the app looks.
// Transient flags (loading, errors) are deliberately absent; they never
// survive a restart.
type AppState struct {
	Token       string           `json:"token,omitempty"`
	CurrentUser *models.AuthUser `json:"current_user,omitempty"`
	ActiveTab   string           `json:"active_tab,omitempty"`
	ThemeMode   models.ThemeMode `json:"theme_mode,omitempty"`
	FontScale   float64          `json:"font_scale,omitempty"`
}

// StateStore persists AppState as a JSON file. Load once at startup, save on
// every mutation.
type StateStore struct {
	path string

	mu    sync.Mutex
	state AppState
}

// NewStateStore opens (or initializes) the state file at path.
func NewStateStore(path string) (*StateStore, error) {
	s := &StateStore{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run: start empty.
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(raw, &s.state); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// State returns a copy of the current state.
func (s *StateStore) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update applies fn to the state and writes the result to disk.
func (s *StateStore) Update(fn func(*AppState)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	return s.save()
}

// SetSession records the signed-in user and token.
func (s *StateStore) SetSession(token string, user *models.AuthUser) error {
	return s.Update(func(st *AppState) {
		st.Token = token
		st.CurrentUser = user
	})
}

// ClearSession signs out. UI preferences survive.
func (s *StateStore) ClearSession() error {
	return s.Update(func(st *AppState) {
		st.Token = ""
		st.CurrentUser = nil
	})
}

// SetActiveTab records the selected navigation tab.
func (s *StateStore) SetActiveTab(tab string) error {
	return s.Update(func(st *AppState) {
		st.ActiveTab = tab
	})
}

// SetTheme records the theme and font scale.
func (s *StateStore) SetTheme(mode models.ThemeMode, fontScale float64) error {
	return s.Update(func(st *AppState) {
		st.ThemeMode = mode
		st.FontScale = fontScale
	})
}

// save writes atomically: temp file then rename.
func (s *StateStore) save() error {
	raw, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

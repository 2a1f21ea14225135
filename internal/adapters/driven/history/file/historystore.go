// Package file implements client-local recent-search storage as a
// TOML file, one bounded list per user.
package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.RecentSearchStore = (*HistoryStore)(nil)

// historyFile is the on-disk TOML shape.
type historyFile struct {
	Searches map[string][]string `toml:"searches"`
}

// HistoryStore is a file-based implementation of driven.RecentSearchStore.
// Every mutation is persisted immediately.
type HistoryStore struct {
	mu       sync.Mutex
	filePath string
	searches map[string][]string
}

// NewHistoryStore creates a TOML-backed history store.
// If historyDir is empty, defaults to ~/.hubsearch/history.
func NewHistoryStore(historyDir string) (*HistoryStore, error) {
	if historyDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		historyDir = filepath.Join(home, ".hubsearch", "history")
	}

	if err := os.MkdirAll(historyDir, 0700); err != nil {
		return nil, err
	}

	s := &HistoryStore{
		filePath: filepath.Join(historyDir, "recent.toml"),
		searches: make(map[string][]string),
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// List returns the user's recent searches, most recent first.
func (s *HistoryStore) List(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.searches[userID]
	out := make([]string, len(entries))
	copy(out, entries)
	return out, nil
}

// Save records query at the head of the user's list. A query already
// present (compared case-insensitively) moves to the head instead of
// duplicating, and the list is capped at MaxRecentSearches.
func (s *HistoryStore) Save(_ context.Context, userID, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := []string{query}
	for _, existing := range s.searches[userID] {
		if strings.EqualFold(existing, query) {
			continue
		}
		updated = append(updated, existing)
	}
	if len(updated) > driven.MaxRecentSearches {
		updated = updated[:driven.MaxRecentSearches]
	}
	s.searches[userID] = updated

	return s.save()
}

// Clear removes all recent searches for the user.
func (s *HistoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.searches, userID)
	return s.save()
}

// Path returns the history file path.
func (s *HistoryStore) Path() string {
	return s.filePath
}

// save writes the history file (caller must hold lock).
func (s *HistoryStore) save() error {
	data, err := toml.Marshal(historyFile{Searches: s.searches})
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// load reads the history file if it exists.
func (s *HistoryStore) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var loaded historyFile
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	if loaded.Searches != nil {
		s.searches = loaded.Searches
	}
	return nil
}

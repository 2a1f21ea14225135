package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.RecentSearchStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of
// driven.RecentSearchStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries map[string][]string
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{entries: make(map[string][]string)}
}

// List returns the user's recent searches, newest first.
func (s *HistoryStore) List(_ context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.entries[userID]
	out := make([]string, len(entries))
	copy(out, entries)
	return out, nil
}

// Save prepends the trimmed query, removing any case-insensitive
// duplicate first and trimming the list to the cap. Empty queries are
// ignored.
func (s *HistoryStore) Save(_ context.Context, userID, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lowered := strings.ToLower(query)
	kept := make([]string, 0, driven.MaxRecentSearches)
	kept = append(kept, query)
	for _, entry := range s.entries[userID] {
		if strings.ToLower(entry) == lowered {
			continue
		}
		kept = append(kept, entry)
		if len(kept) >= driven.MaxRecentSearches {
			break
		}
	}
	s.entries[userID] = kept
	return nil
}

// Clear removes all entries for the user.
func (s *HistoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

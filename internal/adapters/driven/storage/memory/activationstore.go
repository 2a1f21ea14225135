package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
)

// Ensure ActivationStore implements the interface.
var _ driven.ActivationStore = (*ActivationStore)(nil)

// ActivationStore is an in-memory implementation of
// driven.ActivationStore.
type ActivationStore struct {
	mu          sync.RWMutex
	activations []driven.ActivationRecord
}

// NewActivationStore creates an empty in-memory activation store.
func NewActivationStore() *ActivationStore {
	return &ActivationStore{}
}

// Add stores an activation record.
func (s *ActivationStore) Add(activation driven.ActivationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activations = append(s.activations, activation)
}

// ListActiveForUser returns the user's active activations.
func (s *ActivationStore) ListActiveForUser(_ context.Context, userID string, limit int) ([]driven.ActivationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]driven.ActivationRecord, 0, limit)
	for _, activation := range s.activations {
		if activation.UserID != userID || activation.Status != "active" {
			continue
		}
		matches = append(matches, activation)
		if len(matches) >= limit {
			break
		}
	}
	return matches, nil
}

package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
)

// Ensure ToolStore implements the interface.
var _ driven.ToolStore = (*ToolStore)(nil)

// ToolStore is an in-memory implementation of driven.ToolStore.
type ToolStore struct {
	mu    sync.RWMutex
	tools []driven.ToolRecord
}

// NewToolStore creates an empty in-memory tool store.
func NewToolStore() *ToolStore {
	return &ToolStore{}
}

// Add stores a tool record.
func (s *ToolStore) Add(tool driven.ToolRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tools = append(s.tools, tool)
}

// FindActive returns active tools whose name, description, or
// category contains term, case-insensitively.
func (s *ToolStore) FindActive(_ context.Context, term string, limit int) ([]driven.ToolRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(term)
	matches := make([]driven.ToolRecord, 0, limit)
	for _, tool := range s.tools {
		if !tool.Active {
			continue
		}
		if !strings.Contains(strings.ToLower(tool.Name), term) &&
			!strings.Contains(strings.ToLower(tool.Description), term) &&
			!strings.Contains(strings.ToLower(tool.Category), term) {
			continue
		}
		matches = append(matches, tool)
		if len(matches) >= limit {
			break
		}
	}
	return matches, nil
}

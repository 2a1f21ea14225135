package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
)

// Ensure UserStore implements both record and identity interfaces.
var (
	_ driven.UserStore        = (*UserStore)(nil)
	_ driven.IdentityProvider = (*UserStore)(nil)
)

// UserStore is an in-memory implementation of driven.UserStore that
// doubles as the identity provider for role lookups.
type UserStore struct {
	mu    sync.RWMutex
	users []driven.UserRecord
	roles map[string]domain.Role
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{roles: make(map[string]domain.Role)}
}

// Add stores a user record with the given role.
func (s *UserStore) Add(user driven.UserRecord, role domain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	s.roles[user.ID] = role
}

// Find returns users whose name, email, or plan contains term,
// case-insensitively.
func (s *UserStore) Find(_ context.Context, term string, limit int) ([]driven.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(term)
	matches := make([]driven.UserRecord, 0, limit)
	for _, user := range s.users {
		if !strings.Contains(strings.ToLower(user.Name), term) &&
			!strings.Contains(strings.ToLower(user.Email), term) &&
			!strings.Contains(strings.ToLower(user.Plan), term) {
			continue
		}
		matches = append(matches, user)
		if len(matches) >= limit {
			break
		}
	}
	return matches, nil
}

// Role returns the role recorded for the user, defaulting to member.
func (s *UserStore) Role(_ context.Context, userID string) (domain.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	role, ok := s.roles[userID]
	if !ok {
		return domain.RoleMember, nil
	}
	return role, nil
}

package mcp

import (
	"context"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results      []domain.SearchResult
	err          error
	lastIdentity domain.Identity
	lastOpts     domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	identity domain.Identity,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.lastIdentity = identity
	m.lastOpts = opts
	return m.results, m.err
}

// mockHistoryStore is a mock implementation of driven.RecentSearchStore.
type mockHistoryStore struct {
	searches []string
	err      error
}

func (m *mockHistoryStore) List(_ context.Context, _ string) ([]string, error) {
	return m.searches, m.err
}

func (m *mockHistoryStore) Save(_ context.Context, _, _ string) error {
	return m.err
}

func (m *mockHistoryStore) Clear(_ context.Context, _ string) error {
	return m.err
}

// mockIdentityProvider is a mock implementation of driven.IdentityProvider.
type mockIdentityProvider struct {
	roles map[string]domain.Role
	err   error
}

func (m *mockIdentityProvider) Role(_ context.Context, userID string) (domain.Role, error) {
	if m.err != nil {
		return "", m.err
	}
	if role, ok := m.roles[userID]; ok {
		return role, nil
	}
	return domain.RoleMember, nil
}

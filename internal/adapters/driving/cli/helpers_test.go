package cli

import (
	"context"

	"github.com/custodia-labs/hubsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

// mockSearchService implements driving.SearchService for command tests.
type mockSearchService struct {
	results  []domain.SearchResult
	err      error
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context, _ string, _ domain.Identity, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.lastOpts = opts
	return m.results, m.err
}

// setupTestServices wires mock services into the command tree and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldSearch := searchService
	oldHistory := historyStore
	oldIdentity := identityProvider

	searchService = &mockSearchService{
		results: []domain.SearchResult{
			{
				ID:        "tool-analytics",
				Type:      domain.ResultTypeTool,
				Title:     "Analytics Dashboard",
				Relevance: 82,
				URL:       "/dashboard/tools/tool-analytics",
			},
		},
	}
	historyStore = memory.NewHistoryStore()
	identityProvider = memory.NewUserStore()

	return func() {
		searchService = oldSearch
		historyStore = oldHistory
		identityProvider = oldIdentity
	}
}

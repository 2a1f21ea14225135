package driving

import (
	"context"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

// SearchService fans a query out across the enabled sources and
// returns the merged, filtered, relevance-ranked results.
type SearchService interface {
	// Search dispatches the query on behalf of identity. An empty
	// (trimmed) query returns an empty slice without touching any
	// source.
	Search(ctx context.Context, query string, identity domain.Identity, opts domain.SearchOptions) ([]domain.SearchResult, error)
}

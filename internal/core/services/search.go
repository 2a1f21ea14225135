package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driving"
	"github.com/custodia-labs/hubsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService is the federated search dispatcher. It fans a query
// out to the enabled sources concurrently, concatenates their results
// in source enumeration order, applies the caller's filters, and
// returns a stable relevance-ranked list.
//
// The dispatcher never re-scores: every source is trusted to have
// computed relevance through domain.Score.
type SearchService struct {
	sources []driven.Source
}

// NewSearchService creates a dispatcher over the given sources.
// Source order is significant: it fixes the tie-break order for
// results with equal relevance.
func NewSearchService(sources ...driven.Source) *SearchService {
	return &SearchService{sources: sources}
}

// Search dispatches the query across all sources allowed by the
// filters. An empty (trimmed) query returns an empty slice without
// invoking any source.
func (s *SearchService) Search(
	ctx context.Context, query string, identity domain.Identity, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Dispatch")
	logger.Debug("Query: %q", query)

	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	enabled := make([]driven.Source, 0, len(s.sources))
	for _, src := range s.sources {
		if opts.Filters.AllowsType(src.Type()) {
			enabled = append(enabled, src)
		}
	}
	logger.Debug("Dispatching to %d of %d sources, limit %d", len(enabled), len(s.sources), limit)

	// One slot per source keeps the concatenation order deterministic
	// regardless of which goroutine finishes first.
	buckets := make([][]domain.SearchResult, len(enabled))

	var wg sync.WaitGroup
	for i, src := range enabled {
		wg.Add(1)
		go func(i int, src driven.Source) {
			defer wg.Done()
			results, err := src.Search(ctx, query, identity, limit)
			if err != nil {
				// Sources fail soft themselves; this is a second
				// line of defence so one source can never abort
				// the dispatch.
				logger.Warn("Source %s failed: %v", src.Type(), err)
				return
			}
			buckets[i] = results
		}(i, src)
	}
	wg.Wait()

	merged := make([]domain.SearchResult, 0, limit)
	for _, bucket := range buckets {
		for _, result := range bucket {
			if !opts.Filters.AllowsCategory(result.Category) {
				continue
			}
			if result.Relevance < opts.Filters.MinRelevance {
				continue
			}
			merged = append(merged, result)
		}
	}

	// Stable: equal relevance preserves concatenation order.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Relevance > merged[j].Relevance
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}

	logger.Info("Final results: %d", len(merged))
	return merged, nil
}

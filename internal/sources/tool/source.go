// Package tool searches active marketplace tool listings.
package tool

import (
	"context"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hubsearch/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// Source adapts the tool store to the federated search contract.
// The substring match on name/description/category is pushed down to
// the store; scoring still happens here so ranking is consistent
// across sources.
type Source struct {
	store driven.ToolStore
}

// New creates a tool source backed by the given store.
func New(store driven.ToolStore) *Source {
	return &Source{store: store}
}

// Type returns the result type produced by this source.
func (s *Source) Type() domain.ResultType {
	return domain.ResultTypeTool
}

// Search queries active tools matching term. Store failures are
// logged and yield no results.
func (s *Source) Search(
	ctx context.Context, term string, _ domain.Identity, limit int,
) ([]domain.SearchResult, error) {
	records, err := s.store.FindActive(ctx, term, limit)
	if err != nil {
		logger.Warn("Tool source query failed: %v", err)
		return nil, nil
	}

	results := make([]domain.SearchResult, 0, len(records))
	for _, rec := range records {
		results = append(results, domain.SearchResult{
			ID:          rec.ID,
			Type:        domain.ResultTypeTool,
			Title:       rec.Name,
			Description: rec.Description,
			Category:    rec.Category,
			Relevance:   domain.Score(term, rec.Name, rec.Description),
			URL:         domain.ResultTypeTool.URL(rec.ID),
			Metadata:    map[string]any{"active": rec.Active},
		})
	}

	logger.Debug("Tool source: %d results for %q", len(results), term)
	return results, nil
}

// Package project searches the caller's own tool activations.
package project

import (
	"context"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hubsearch/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// Source adapts the activation store to the federated search
// contract. Activations are scoped to the calling user and carry no
// store-level text filter, so zero-relevance results are dropped
// here before returning.
type Source struct {
	store driven.ActivationStore
}

// New creates a project source backed by the given store.
func New(store driven.ActivationStore) *Source {
	return &Source{store: store}
}

// Type returns the result type produced by this source.
func (s *Source) Type() domain.ResultType {
	return domain.ResultTypeProject
}

// Search scores the caller's active activations against term and
// returns the ones that match at all.
func (s *Source) Search(
	ctx context.Context, term string, identity domain.Identity, limit int,
) ([]domain.SearchResult, error) {
	if !identity.Known() {
		return nil, nil
	}

	records, err := s.store.ListActiveForUser(ctx, identity.UserID, limit)
	if err != nil {
		logger.Warn("Project source query failed: %v", err)
		return nil, nil
	}

	results := make([]domain.SearchResult, 0, len(records))
	for _, rec := range records {
		relevance := domain.Score(term, rec.Tool.Name, rec.Tool.Description)
		if relevance == 0 {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:          rec.ID,
			Type:        domain.ResultTypeProject,
			Title:       rec.Tool.Name,
			Description: rec.Tool.Description,
			Category:    rec.Tool.Category,
			Relevance:   relevance,
			URL:         domain.ResultTypeProject.URL(rec.ID),
			Metadata: map[string]any{
				"status":      rec.Status,
				"activatedAt": rec.ActivatedAt,
			},
		})
	}

	logger.Debug("Project source: %d results for %q", len(results), term)
	return results, nil
}

// Package docs searches a fixed in-memory documentation catalog.
package docs

import (
	"context"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hubsearch/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// Entry is one documentation page in the catalog.
type Entry struct {
	ID          string
	Title       string
	Description string
	Category    string
}

// Source scores catalog entries against the query. There is no
// backing store; the catalog ships with the binary.
type Source struct {
	catalog []Entry
}

// New creates a docs source over the given catalog. A nil catalog
// uses the default one.
func New(catalog []Entry) *Source {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Source{catalog: catalog}
}

// Type returns the result type produced by this source.
func (s *Source) Type() domain.ResultType {
	return domain.ResultTypeDocumentation
}

// Search scores every catalog entry and returns the non-zero matches,
// capped at limit.
func (s *Source) Search(
	_ context.Context, term string, _ domain.Identity, limit int,
) ([]domain.SearchResult, error) {
	results := make([]domain.SearchResult, 0, len(s.catalog))
	for _, entry := range s.catalog {
		relevance := domain.Score(term, entry.Title, entry.Description)
		if relevance == 0 {
			continue
		}
		results = append(results, domain.SearchResult{
			ID:          entry.ID,
			Type:        domain.ResultTypeDocumentation,
			Title:       entry.Title,
			Description: entry.Description,
			Category:    entry.Category,
			Relevance:   relevance,
			URL:         domain.ResultTypeDocumentation.URL(entry.ID),
		})
		if len(results) >= limit {
			break
		}
	}

	logger.Debug("Docs source: %d results for %q", len(results), term)
	return results, nil
}

package driven

import (
	"context"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

// Source is one federated search adapter. Each implementation queries
// a single record source, maps raw records into domain.SearchResult,
// and scores them with domain.Score.
//
// Implementations fail soft: a backing-store error is logged and
// yields an empty slice, never an error. A partial-source failure
// must not abort the rest of a dispatch.
type Source interface {
	// Type tags every result this source produces.
	Type() domain.ResultType

	// Search returns up to limit scored results for the term on
	// behalf of the given identity.
	Search(ctx context.Context, term string, identity domain.Identity, limit int) ([]domain.SearchResult, error)
}

// Package user searches administrative user records.
//
// The source is gated: the caller's role is looked up through the
// identity provider before any user record is touched. Non-admins
// get an empty result, not an error, so the existence and size of
// the user directory is never revealed to them.
package user

import (
	"context"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hubsearch/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// Source adapts the user store to the federated search contract.
type Source struct {
	store    driven.UserStore
	identity driven.IdentityProvider
}

// New creates a user source backed by the given store and identity
// provider.
func New(store driven.UserStore, identity driven.IdentityProvider) *Source {
	return &Source{store: store, identity: identity}
}

// Type returns the result type produced by this source.
func (s *Source) Type() domain.ResultType {
	return domain.ResultTypeUser
}

// Search queries user records matching term on name, email, or plan.
// Callers without the admin role receive an empty result without the
// store being queried.
func (s *Source) Search(
	ctx context.Context, term string, identity domain.Identity, limit int,
) ([]domain.SearchResult, error) {
	if !identity.Known() {
		return nil, nil
	}

	role, err := s.identity.Role(ctx, identity.UserID)
	if err != nil {
		logger.Warn("User source role lookup failed: %v", err)
		return nil, nil
	}
	if !role.Admin() {
		logger.Debug("User source: caller %s is not admin, skipping", identity.UserID)
		return nil, nil
	}

	records, err := s.store.Find(ctx, term, limit)
	if err != nil {
		logger.Warn("User source query failed: %v", err)
		return nil, nil
	}

	results := make([]domain.SearchResult, 0, len(records))
	for _, rec := range records {
		results = append(results, domain.SearchResult{
			ID:          rec.ID,
			Type:        domain.ResultTypeUser,
			Title:       rec.Name,
			Description: rec.Email,
			Relevance:   domain.Score(term, rec.Name, rec.Email),
			URL:         domain.ResultTypeUser.URL(rec.ID),
			Metadata: map[string]any{
				"plan":   rec.Plan,
				"status": rec.Status,
			},
		})
	}

	logger.Debug("User source: %d results for %q", len(results), term)
	return results, nil
}

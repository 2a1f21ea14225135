package mcp

import (
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides federated search.
	Search driving.SearchService

	// History provides recent searches.
	History driven.RecentSearchStore

	// Identity resolves caller roles.
	Identity driven.IdentityProvider
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// History and Identity are optional
	return nil
}

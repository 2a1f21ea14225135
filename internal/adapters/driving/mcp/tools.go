package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/logger"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query        string   `json:"query" jsonschema:"the search query"`
	UserID       string   `json:"user_id" jsonschema:"the user the search runs on behalf of"`
	Types        []string `json:"types,omitempty" jsonschema:"restrict to result types: tool, project, user, documentation"`
	Categories   []string `json:"categories,omitempty" jsonschema:"restrict to these categories"`
	MinRelevance int      `json:"min_relevance,omitempty" jsonschema:"drop results scoring below this value (0-100)"`
	Limit        int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Relevance   int    `json:"relevance"`
	URL         string `json:"url"`
}

// RecentSearchesInput is the input schema for the recent_searches tool.
type RecentSearchesInput struct {
	UserID string `json:"user_id" jsonschema:"the user whose recent searches to list"`
}

// RecentSearchesOutput is the output schema for the recent_searches tool.
type RecentSearchesOutput struct {
	Searches []string `json:"searches"`
	Count    int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search marketplace tools, activations, users, and documentation",
	}, s.handleSearch)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "recent_searches",
			Description: "List a user's recent searches, most recent first",
		}, s.handleRecentSearches)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	types := make([]domain.ResultType, 0, len(input.Types))
	for _, value := range input.Types {
		t := domain.ResultType(value)
		if !t.Valid() {
			return nil, SearchOutput{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, value)
		}
		types = append(types, t)
	}

	opts := domain.SearchOptions{
		Filters: domain.SearchFilters{
			Types:        types,
			Categories:   input.Categories,
			MinRelevance: input.MinRelevance,
		},
		Limit: limit,
	}

	results, err := s.ports.Search.Search(ctx, input.Query, s.identity(ctx, input.UserID), opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		output.Results[i] = SearchResultOutput{
			ID:          results[i].ID,
			Type:        string(results[i].Type),
			Title:       results[i].Title,
			Description: results[i].Description,
			Category:    results[i].Category,
			Relevance:   results[i].Relevance,
			URL:         results[i].URL,
		}
	}

	return nil, output, nil
}

// handleRecentSearches handles the recent_searches tool invocation.
func (s *Server) handleRecentSearches(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecentSearchesInput,
) (*mcp.CallToolResult, RecentSearchesOutput, error) {
	searches, err := s.ports.History.List(ctx, input.UserID)
	if err != nil {
		return nil, RecentSearchesOutput{}, err
	}

	return nil, RecentSearchesOutput{
		Searches: searches,
		Count:    len(searches),
	}, nil
}

// identity resolves userID into a caller identity. The role is
// advisory; the user source re-checks it against the provider.
func (s *Server) identity(ctx context.Context, userID string) domain.Identity {
	identity := domain.Identity{UserID: userID, Role: domain.RoleMember}
	if s.ports.Identity == nil {
		return identity
	}

	role, err := s.ports.Identity.Role(ctx, userID)
	if err != nil {
		logger.Warn("Resolving role for %s: %v", userID, err)
		return identity
	}
	identity.Role = role
	return identity
}

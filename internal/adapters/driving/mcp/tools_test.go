package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

func TestServer_handleSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns search results", func(t *testing.T) {
		mockSearch := &mockSearchService{
			results: []domain.SearchResult{
				{
					ID:          "tool-analytics",
					Type:        domain.ResultTypeTool,
					Title:       "Analytics Dashboard",
					Description: "Realtime analytics",
					Category:    "analytics",
					Relevance:   82,
					URL:         "/dashboard/tools/tool-analytics",
				},
			},
		}

		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "analytics", UserID: "u-1", Limit: 10}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Len(t, output.Results, 1)
		assert.Equal(t, "tool-analytics", output.Results[0].ID)
		assert.Equal(t, "tool", output.Results[0].Type)
		assert.Equal(t, "Analytics Dashboard", output.Results[0].Title)
		assert.Equal(t, 82, output.Results[0].Relevance)
		assert.Equal(t, "/dashboard/tools/tool-analytics", output.Results[0].URL)
	})

	t.Run("default limit applies when unset", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "test", UserID: "u-1", Limit: 0}
		_, output, err := server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Equal(t, domain.DefaultSearchLimit, mockSearch.lastOpts.Limit)
	})

	t.Run("resolves caller role from provider", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		ports := &Ports{
			Search:   mockSearch,
			Identity: &mockIdentityProvider{roles: map[string]domain.Role{"u-admin": domain.RoleAdmin}},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleSearch(ctx, nil, SearchInput{Query: "test", UserID: "u-admin"})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, mockSearch.lastIdentity.Role)
		assert.Equal(t, "u-admin", mockSearch.lastIdentity.UserID)
	})

	t.Run("rejects unknown result type", func(t *testing.T) {
		ports := &Ports{Search: &mockSearchService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "test", UserID: "u-1", Types: []string{"widget"}}
		_, _, err = server.handleSearch(ctx, nil, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	})

	t.Run("forwards filters", func(t *testing.T) {
		mockSearch := &mockSearchService{}
		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{
			Query:        "test",
			UserID:       "u-1",
			Types:        []string{"tool", "documentation"},
			Categories:   []string{"analytics"},
			MinRelevance: 40,
		}
		_, _, err = server.handleSearch(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, []domain.ResultType{domain.ResultTypeTool, domain.ResultTypeDocumentation}, mockSearch.lastOpts.Filters.Types)
		assert.Equal(t, []string{"analytics"}, mockSearch.lastOpts.Filters.Categories)
		assert.Equal(t, 40, mockSearch.lastOpts.Filters.MinRelevance)
	})

	t.Run("returns error on search failure", func(t *testing.T) {
		mockSearch := &mockSearchService{
			err: errors.New("search failed"),
		}

		ports := &Ports{Search: mockSearch}
		server, err := NewServer(ports)
		require.NoError(t, err)

		input := SearchInput{Query: "test", UserID: "u-1"}
		_, _, err = server.handleSearch(ctx, nil, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "search failed")
	})
}

func TestServer_handleRecentSearches(t *testing.T) {
	ctx := context.Background()

	t.Run("returns recent searches", func(t *testing.T) {
		ports := &Ports{
			Search:  &mockSearchService{},
			History: &mockHistoryStore{searches: []string{"billing", "analytics"}},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleRecentSearches(ctx, nil, RecentSearchesInput{UserID: "u-1"})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, []string{"billing", "analytics"}, output.Searches)
	})

	t.Run("returns error on store failure", func(t *testing.T) {
		ports := &Ports{
			Search:  &mockSearchService{},
			History: &mockHistoryStore{err: errors.New("disk gone")},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleRecentSearches(ctx, nil, RecentSearchesInput{UserID: "u-1"})

		require.Error(t, err)
	})
}

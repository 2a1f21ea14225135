package docs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

func TestSource_Type(t *testing.T) {
	src := New(nil)
	assert.Equal(t, domain.ResultTypeDocumentation, src.Type())
}

func TestSource_Search_DropsZeroScores(t *testing.T) {
	src := New([]Entry{
		{ID: "billing", Title: "Billing and Plans", Description: "Plan tiers and quotas", Category: "billing"},
		{ID: "keys", Title: "API Keys", Description: "Creating keys", Category: "reference"},
	})

	results, err := src.Search(context.Background(), "billing", domain.Identity{UserID: "u-1"}, 10)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "billing", results[0].ID)
	assert.Equal(t, "/docs/billing", results[0].URL)
	assert.Greater(t, results[0].Relevance, 0)
}

func TestSource_Search_DefaultCatalog(t *testing.T) {
	src := New(nil)

	results, err := src.Search(context.Background(), "billing", domain.Identity{UserID: "u-1"}, 10)

	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, domain.ResultTypeDocumentation, r.Type)
		assert.Greater(t, r.Relevance, 0)
	}
}

func TestSource_Search_RespectsLimit(t *testing.T) {
	src := New([]Entry{
		{ID: "a", Title: "Search Basics", Description: "search"},
		{ID: "b", Title: "Search Filters", Description: "search"},
		{ID: "c", Title: "Search Shortcuts", Description: "search"},
	})

	results, err := src.Search(context.Background(), "search", domain.Identity{UserID: "u-1"}, 2)

	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSource_Search_NoMatch(t *testing.T) {
	src := New(nil)

	results, err := src.Search(context.Background(), "zzzzzz", domain.Identity{UserID: "u-1"}, 10)

	require.NoError(t, err)
	assert.Empty(t, results)
}

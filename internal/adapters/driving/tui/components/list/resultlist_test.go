package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

func sampleResults() []domain.SearchResult {
	return []domain.SearchResult{
		{ID: "t-1", Type: domain.ResultTypeTool, Title: "Analytics Dashboard", Relevance: 82, URL: "/dashboard/tools/t-1"},
		{ID: "d-1", Type: domain.ResultTypeDocumentation, Title: "Getting Started", Relevance: 40, URL: "/docs/d-1"},
	}
}

func TestResultList_SetResults(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults(sampleResults())

	assert.Equal(t, 2, l.Count())
	assert.False(t, l.IsEmpty())
	assert.Equal(t, 0, l.Selected())
}

func TestResultList_Navigation(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults(sampleResults())

	l.MoveDown()
	assert.Equal(t, 1, l.Selected())

	// Clamped at the end.
	l.MoveDown()
	assert.Equal(t, 1, l.Selected())

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	// Clamped at the start.
	l.MoveUp()
	assert.Equal(t, 0, l.Selected())
}

func TestResultList_SelectedResult(t *testing.T) {
	l := NewResultList(nil)
	assert.Nil(t, l.SelectedResult())

	l.SetResults(sampleResults())
	result := l.SelectedResult()
	require.NotNil(t, result)
	assert.Equal(t, "t-1", result.ID)

	l.MoveDown()
	result = l.SelectedResult()
	require.NotNil(t, result)
	assert.Equal(t, "d-1", result.ID)
}

func TestResultList_SelectionResetsWhenResultsShrink(t *testing.T) {
	l := NewResultList(nil)
	l.SetResults(sampleResults())
	l.MoveDown()

	l.SetResults(sampleResults()[:1])
	assert.Equal(t, 0, l.Selected())
}

func TestResultList_View(t *testing.T) {
	l := NewResultList(nil)
	l.SetDimensions(100, 20)

	assert.Contains(t, l.View(), "No results")

	l.SetResults(sampleResults())
	view := l.View()
	assert.Contains(t, view, "Results (2)")
	assert.Contains(t, view, "Analytics Dashboard")
	assert.Contains(t, view, "[tool]")
	assert.Contains(t, view, "/dashboard/tools/t-1")
}

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

// stubSession implements driving.SessionService.
type stubSession struct {
	state   domain.SessionState
	stopped bool
}

func (s *stubSession) Submit(context.Context, string)            {}
func (s *stubSession) Clear()                                    {}
func (s *stubSession) ToggleOpen()                               {}
func (s *stubSession) Open()                                     {}
func (s *stubSession) Close()                                    {}
func (s *stubSession) ClearRecentSearches(context.Context) error { return nil }
func (s *stubSession) State() domain.SessionState                { return s.state }
func (s *stubSession) Subscribe(func(domain.SessionState))       {}
func (s *stubSession) Stop()                                     { s.stopped = true }

func TestNewApp_RequiresSession(t *testing.T) {
	app, err := NewApp(&Ports{})
	require.Error(t, err)
	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingSession)
}

func TestNewApp_ValidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Session: &stubSession{}})
	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_QuitStopsSession(t *testing.T) {
	session := &stubSession{}
	app, err := NewApp(&Ports{Session: session})
	require.NoError(t, err)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.True(t, session.stopped)
}

func TestApp_ResultChosenQuitsWithResult(t *testing.T) {
	session := &stubSession{}
	app, err := NewApp(&Ports{Session: session})
	require.NoError(t, err)

	result := domain.SearchResult{ID: "t-1", URL: "/dashboard/tools/t-1"}
	model, cmd := app.Update(messages.ResultChosen{Result: result})

	require.NotNil(t, cmd)
	assert.True(t, session.stopped)

	finished, ok := model.(*App)
	require.True(t, ok)
	require.NotNil(t, finished.Chosen())
	assert.Equal(t, "t-1", finished.Chosen().ID)
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingSession)
	assert.NoError(t, (&Ports{Session: &stubSession{}}).Validate())
}

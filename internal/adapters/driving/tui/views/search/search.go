// Package search provides the search overlay view for the TUI.
package search

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driving"
)

// View is the search overlay: an input box, the ranked result list,
// and a recent-search list shown while the query is empty. All state
// it renders comes from session snapshots; the view itself never
// dispatches a search.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	session driving.SessionService
	ctx     context.Context

	state  domain.SessionState
	width  int
	height int
	ready  bool
}

// NewView creates a new search view bound to a query session.
func NewView(s *styles.Styles, km *keymap.KeyMap, session driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		list:      list.NewResultList(s),
		statusbar: status.NewBar(s, km),
		session:   session,
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
	if session != nil {
		v.applyState(session.State())
	}
	return v
}

// WithContext sets the context used for session calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SessionUpdated:
		v.applyState(msg.State)
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.session == nil {
		return v, func() tea.Msg { return messages.ErrorOccurred{Err: ErrNoSession} }
	}

	keyStr := msg.String()

	// Hidden overlay: only the open bindings do anything.
	if !v.state.IsOpen {
		if keymap.Matches(keyStr, v.keymap.Open) || keymap.Matches(keyStr, v.keymap.ToggleOpen) {
			v.session.Open()
		}
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Close):
		v.session.Close()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.ToggleOpen):
		v.session.ToggleOpen()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.ClearQuery):
		v.input.Reset()
		v.session.Clear()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.ClearHistory):
		if err := v.session.ClearRecentSearches(v.ctx); err != nil {
			return v, func() tea.Msg { return messages.ErrorOccurred{Err: err} }
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Select):
		result := v.list.SelectedResult()
		if result == nil {
			return v, nil
		}
		chosen := *result
		v.statusbar.SetMessage("Opening " + chosen.URL)
		return v, func() tea.Msg { return messages.ResultChosen{Result: chosen} }
	}

	// Everything else is typing. Submit on every change; the session
	// debounces, so rapid keystrokes cost one dispatch.
	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if after := v.input.Value(); after != before {
		v.session.Submit(v.ctx, after)
	}
	return v, cmd
}

// applyState refreshes the components from a session snapshot.
func (v *View) applyState(state domain.SessionState) {
	v.state = state
	v.list.SetResults(state.Results)

	// Keep the input in sync when the session resets the query from
	// outside the keyboard path (Clear, empty submit).
	if v.input.Value() != state.Query {
		v.input.SetValue(state.Query)
	}

	switch {
	case !state.IsOpen:
		v.statusbar.SetState(status.StateClosed)
	case state.IsLoading:
		v.statusbar.SetState(status.StateSearching)
	default:
		v.statusbar.SetState(status.StateResults)
		v.statusbar.SetResultCount(len(state.Results))
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	if !v.state.IsOpen {
		hint := v.styles.Muted.Render("Press / to search")
		return lipgloss.JoinVertical(lipgloss.Left, hint, "", v.statusbar.View())
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("Hubsearch")
	sections = append(sections, header, "")
	sections = append(sections, v.input.View(), "")

	if strings.TrimSpace(v.state.Query) == "" {
		sections = append(sections, v.renderRecentSearches())
	} else {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderRecentSearches shows the cached history while the query box
// is empty.
func (v *View) renderRecentSearches() string {
	if len(v.state.RecentSearches) == 0 {
		return v.styles.Muted.Render("No recent searches")
	}

	lines := make([]string, 0, len(v.state.RecentSearches)+2)
	lines = append(lines, v.styles.Subtitle.Render("Recent searches"), "")
	for i, entry := range v.state.RecentSearches {
		lines = append(lines, v.styles.Normal.Render(fmt.Sprintf("  [%d] %s", i+1, entry)))
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8) // Reserve space for header, input, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// State returns the last applied session snapshot.
func (v *View) State() domain.SessionState {
	return v.state
}

// SelectedResult returns the currently selected result.
func (v *View) SelectedResult() *domain.SearchResult {
	return v.list.SelectedResult()
}

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hubsearch/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	// searchView is the search overlay.
	searchView *search.View

	// chosen is the result picked before quitting, if any.
	chosen *domain.SearchResult

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		searchView: search.NewView(s, km, ports.Session),
	}, nil
}

// WithContext sets the context used for session calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView = a.searchView.WithContext(ctx)
	return a
}

// Init initialises the application.
func (a *App) Init() tea.Cmd {
	return a.searchView.Init()
}

// Update handles messages and updates application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			a.ports.Session.Stop()
			return a, tea.Quit
		}

	case messages.ResultChosen:
		// Navigation is the host's job; hand the URL back and exit.
		chosen := msg.Result
		a.chosen = &chosen
		a.ports.Session.Stop()
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// View renders the application.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.searchView.View()
}

// Chosen returns the result the user selected, or nil.
func (a *App) Chosen() *domain.SearchResult {
	return a.chosen
}

// Run starts the TUI program. Session snapshots are forwarded into
// the program as messages so the overlay rerenders on every publish.
func Run(ctx context.Context, ports *Ports) (*domain.SearchResult, error) {
	app, err := NewApp(ports)
	if err != nil {
		return nil, err
	}
	app = app.WithContext(ctx)

	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	ports.Session.Subscribe(func(state domain.SessionState) {
		program.Send(messages.SessionUpdated{State: state})
	})

	model, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running tui: %w", err)
	}

	finished, ok := model.(*App)
	if !ok {
		return nil, nil
	}
	return finished.Chosen(), nil
}

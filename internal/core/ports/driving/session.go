package driving

import (
	"context"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

// SessionService manages one consumer's query lifecycle: debounced
// submission, staleness-guarded publication, UI open state, and the
// cached recent-search list.
type SessionService interface {
	// Submit records new input text. Empty text (or an unknown
	// identity) clears the session; anything else schedules a
	// debounced dispatch.
	Submit(ctx context.Context, text string)

	// Clear resets query and results without touching IsOpen.
	Clear()

	// ToggleOpen flips the UI visibility flag.
	ToggleOpen()

	// Open marks the UI visible.
	Open()

	// Close hides the UI. Query and results survive so reopening
	// shows the last published state.
	Close()

	// ClearRecentSearches wipes the identity's search history.
	ClearRecentSearches(ctx context.Context) error

	// State returns a snapshot of the current session.
	State() domain.SessionState

	// Subscribe registers a listener invoked with a snapshot after
	// every state change. Only one listener is held; subscribing
	// replaces the previous one.
	Subscribe(fn func(domain.SessionState))

	// Stop cancels any pending debounce timer.
	Stop()
}

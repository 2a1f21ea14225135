// Package messages defines the tea messages exchanged inside the TUI.
package messages

import (
	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

// SessionUpdated carries a fresh session snapshot published by the
// query session. The TUI rerenders from the snapshot alone.
type SessionUpdated struct {
	State domain.SessionState
}

// ResultChosen is emitted when the user selects a result. The URL is
// the navigation target the host application routes on.
type ResultChosen struct {
	Result domain.SearchResult
}

// ErrorOccurred carries an error to surface in the status bar.
type ErrorOccurred struct {
	Err error
}

package domain

// SessionState is an immutable snapshot of a query session, published
// to UI consumers whenever the session changes.
type SessionState struct {
	// Query is the current raw input text.
	Query string

	// Results is the last published ordered result list.
	Results []SearchResult

	// IsLoading is true from submission until the matching dispatch
	// publishes or is superseded.
	IsLoading bool

	// IsOpen is the UI visibility flag, independent of loading.
	IsOpen bool

	// Generation is the monotonic submission counter. A dispatch
	// whose captured generation no longer matches is stale and its
	// results are discarded.
	Generation uint64

	// RecentSearches is the cached recent-search list for the
	// session's identity, newest first.
	RecentSearches []string
}

package driven

import "context"

// MaxRecentSearches is the per-user cap on stored history entries.
const MaxRecentSearches = 10

// RecentSearchStore persists a bounded, deduplicated, newest-first
// list of past query strings per user. Saving a query that already
// exists (case-insensitive) removes the old entry and prepends the
// new one, refreshing its recency. Storage is keyed per user so
// switching accounts never leaks another account's history.
type RecentSearchStore interface {
	// List returns up to MaxRecentSearches entries, newest first.
	List(ctx context.Context, userID string) ([]string, error)

	// Save records a query for the user.
	Save(ctx context.Context, userID, query string) error

	// Clear removes all entries for the user.
	Clear(ctx context.Context, userID string) error
}

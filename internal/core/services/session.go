package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driving"
	"github.com/custodia-labs/hubsearch/internal/logger"
)

// Ensure QuerySession implements the interface.
var _ driving.SessionService = (*QuerySession)(nil)

// DefaultDebounce is the delay between the last keystroke and the
// dispatch it triggers.
const DefaultDebounce = 300 * time.Millisecond

// QuerySession owns one consumer's search state. Submissions are
// debounced; each one bumps a generation counter, and a dispatch
// whose captured generation no longer matches the session's current
// one is discarded silently. That is the race-free substitute for
// cancelling an in-flight request: concurrent dispatches may all
// complete, but only the most recent submission's results are ever
// published.
type QuerySession struct {
	mu       sync.Mutex
	search   driving.SearchService
	history  driven.RecentSearchStore
	identity domain.Identity
	debounce time.Duration
	filters  domain.SearchFilters
	limit    int

	generation uint64
	query      string
	results    []domain.SearchResult
	isLoading  bool
	isOpen     bool
	recent     []string
	timer      *time.Timer
	listener   func(domain.SessionState)
}

// SessionOption configures a QuerySession.
type SessionOption func(*QuerySession)

// WithDebounce overrides the debounce window. Mainly for tests.
func WithDebounce(d time.Duration) SessionOption {
	return func(s *QuerySession) { s.debounce = d }
}

// WithLimit overrides the per-dispatch result limit.
func WithLimit(n int) SessionOption {
	return func(s *QuerySession) { s.limit = n }
}

// WithFilters applies fixed filters to every dispatch of the session.
func WithFilters(f domain.SearchFilters) SessionOption {
	return func(s *QuerySession) { s.filters = f }
}

// NewQuerySession creates a session for the given identity. The
// history store is optional; without it recent searches are disabled.
// The cached recent-search list is loaded eagerly so the first open
// shows history before any dispatch completes.
func NewQuerySession(
	search driving.SearchService,
	history driven.RecentSearchStore,
	identity domain.Identity,
	opts ...SessionOption,
) *QuerySession {
	s := &QuerySession{
		search:   search,
		history:  history,
		identity: identity,
		debounce: DefaultDebounce,
		limit:    domain.DefaultSearchLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	if history != nil && identity.Known() {
		recent, err := history.List(context.Background(), identity.UserID)
		if err != nil {
			logger.Warn("Loading recent searches failed: %v", err)
		} else {
			s.recent = recent
		}
	}

	return s
}

// Subscribe registers the listener invoked after every state change.
func (s *QuerySession) Subscribe(fn func(domain.SessionState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = fn
}

// Submit records new input text. Empty text or an unknown identity
// resets the session to idle without dispatching. Otherwise the
// generation advances synchronously (so rapid submissions are
// unambiguously ordered) and a debounced dispatch is scheduled.
func (s *QuerySession) Submit(ctx context.Context, text string) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !s.identity.Known() {
		// Advancing the generation makes any in-flight dispatch
		// stale, so it cannot republish into the idle session.
		s.generation++
		s.query = ""
		s.results = nil
		s.isLoading = false
		s.publishLocked()
		return
	}

	s.generation++
	gen := s.generation
	s.query = text
	s.isOpen = true
	s.isLoading = true
	logger.Debug("Submitted %q as generation %d", text, gen)

	s.timer = time.AfterFunc(s.debounce, func() {
		s.dispatch(ctx, trimmed, gen)
	})
	s.publishLocked()
}

// dispatch runs after the debounce window and publishes the results
// unless a newer submission superseded this one.
func (s *QuerySession) dispatch(ctx context.Context, query string, gen uint64) {
	results, err := s.search.Search(ctx, query, s.identity, domain.SearchOptions{
		Filters: s.filters,
		Limit:   s.limit,
	})
	if err != nil {
		// No fatal path here: a failed dispatch publishes an empty
		// result set and the user retries by typing.
		logger.Warn("Dispatch failed: %v", err)
		results = nil
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		logger.Debug("Discarding stale results for generation %d (current %d)", gen, s.generation)
		return
	}
	s.results = results
	s.isLoading = false
	s.publishLocked()

	if err == nil {
		s.saveHistory(ctx, query)
	}
}

// saveHistory persists the query and refreshes the cached recent
// list off the publish path.
func (s *QuerySession) saveHistory(ctx context.Context, query string) {
	if s.history == nil {
		return
	}
	go func() {
		if err := s.history.Save(ctx, s.identity.UserID, query); err != nil {
			logger.Warn("Saving recent search failed: %v", err)
			return
		}
		recent, err := s.history.List(ctx, s.identity.UserID)
		if err != nil {
			logger.Warn("Refreshing recent searches failed: %v", err)
			return
		}
		s.mu.Lock()
		s.recent = recent
		s.publishLocked()
	}()
}

// Clear resets query and results. IsOpen is untouched. The generation
// advances so a pending or in-flight dispatch is discarded as stale.
func (s *QuerySession) Clear() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
	s.query = ""
	s.results = nil
	s.isLoading = false
	s.publishLocked()
}

// ToggleOpen flips the UI visibility flag.
func (s *QuerySession) ToggleOpen() {
	s.mu.Lock()
	s.isOpen = !s.isOpen
	s.publishLocked()
}

// Open marks the UI visible.
func (s *QuerySession) Open() {
	s.mu.Lock()
	s.isOpen = true
	s.publishLocked()
}

// Close hides the UI. Query and results survive so reopening shows
// the last published state.
func (s *QuerySession) Close() {
	s.mu.Lock()
	s.isOpen = false
	s.publishLocked()
}

// ClearRecentSearches wipes the identity's search history.
func (s *QuerySession) ClearRecentSearches(ctx context.Context) error {
	if s.history == nil {
		return domain.ErrHistoryUnavailable
	}
	if !s.identity.Known() {
		return domain.ErrUnknownIdentity
	}
	if err := s.history.Clear(ctx, s.identity.UserID); err != nil {
		return err
	}
	s.mu.Lock()
	s.recent = nil
	s.publishLocked()
	return nil
}

// Stop cancels any pending debounce timer.
func (s *QuerySession) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// State returns a snapshot of the current session.
func (s *QuerySession) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// stateLocked builds a snapshot. Callers must hold mu.
func (s *QuerySession) stateLocked() domain.SessionState {
	results := make([]domain.SearchResult, len(s.results))
	copy(results, s.results)
	recent := make([]string, len(s.recent))
	copy(recent, s.recent)

	return domain.SessionState{
		Query:          s.query,
		Results:        results,
		IsLoading:      s.isLoading,
		IsOpen:         s.isOpen,
		Generation:     s.generation,
		RecentSearches: recent,
	}
}

// publishLocked snapshots the state, releases mu, and notifies the
// listener. Callers must hold mu and must not use it afterwards.
func (s *QuerySession) publishLocked() {
	state := s.stateLocked()
	fn := s.listener
	s.mu.Unlock()
	if fn != nil {
		fn(state)
	}
}

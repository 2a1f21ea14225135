package file

import (
	"time"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
	"github.com/custodia-labs/hubsearch/internal/core/ports/driven"
)

// Settings are the resolved application settings with defaults applied.
type Settings struct {
	// Debounce is the quiet period before a typed query dispatches.
	Debounce time.Duration
	// SearchLimit caps the merged result list.
	SearchLimit int
	// MinRelevance drops results scoring below the threshold.
	MinRelevance int
	// DataDir holds the SQLite database. Empty means the default
	// ~/.hubsearch/data.
	DataDir string
	// HistoryDir holds the recent-search file. Empty means the default
	// ~/.hubsearch/history.
	HistoryDir string
}

// ResolveSettings reads the known configuration keys from store and
// applies defaults for anything unset or out of range.
func ResolveSettings(store driven.ConfigStore) Settings {
	settings := Settings{
		Debounce:    300 * time.Millisecond,
		SearchLimit: domain.DefaultSearchLimit,
	}

	if ms := store.GetInt("search.debounce_ms"); ms > 0 {
		settings.Debounce = time.Duration(ms) * time.Millisecond
	}
	if limit := store.GetInt("search.limit"); limit > 0 {
		settings.SearchLimit = limit
	}
	if min := store.GetInt("search.min_relevance"); min > 0 && min <= domain.MaxRelevance {
		settings.MinRelevance = min
	}
	settings.DataDir = store.GetString("storage.data_dir")
	settings.HistoryDir = store.GetString("history.dir")

	return settings
}

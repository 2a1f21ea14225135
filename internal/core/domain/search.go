package domain

// DefaultSearchLimit is the maximum number of merged results returned
// when the caller does not specify one.
const DefaultSearchLimit = 10

// ResultType identifies which source a search result came from.
type ResultType string

const (
	// ResultTypeTool is a marketplace tool listing.
	ResultTypeTool ResultType = "tool"

	// ResultTypeProject is one of the caller's own tool activations.
	ResultTypeProject ResultType = "project"

	// ResultTypeUser is an administrative user record.
	ResultTypeUser ResultType = "user"

	// ResultTypeDocumentation is a static documentation page.
	ResultTypeDocumentation ResultType = "documentation"
)

// AllResultTypes lists every result type in dispatch enumeration order.
// The dispatcher fans out (and ties are broken) in this order.
func AllResultTypes() []ResultType {
	return []ResultType{
		ResultTypeTool,
		ResultTypeProject,
		ResultTypeUser,
		ResultTypeDocumentation,
	}
}

// Valid reports whether the result type is one of the known types.
func (t ResultType) Valid() bool {
	switch t {
	case ResultTypeTool, ResultTypeProject, ResultTypeUser, ResultTypeDocumentation:
		return true
	default:
		return false
	}
}

// URL returns the navigation target for a result of this type.
// Navigation itself is the consumer's responsibility; this is the
// fixed type-to-path mapping the dashboard routes on.
func (t ResultType) URL(id string) string {
	switch t {
	case ResultTypeTool:
		return "/dashboard/tools/" + id
	case ResultTypeProject:
		return "/dashboard/projects/" + id
	case ResultTypeUser:
		return "/management/users/" + id
	case ResultTypeDocumentation:
		return "/docs/" + id
	default:
		return ""
	}
}

// SearchResult represents a single hit from one source adapter.
// Results are ephemeral: produced per query, never persisted.
type SearchResult struct {
	// ID is unique within the result's source, not globally.
	ID string `json:"id"`

	// Type tags the origin source.
	Type ResultType `json:"type"`

	// Title is the primary display string.
	Title string `json:"title"`

	// Description is the secondary display string.
	Description string `json:"description,omitempty"`

	// Category is an optional classification used for filtering.
	Category string `json:"category,omitempty"`

	// Relevance is the heuristic match score in [0,100].
	Relevance int `json:"relevance"`

	// URL is the application-relative navigation target.
	URL string `json:"url"`

	// Metadata carries source-specific flags (active, plan, status, ...).
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SearchFilters narrows a dispatch. Zero values mean "no restriction".
type SearchFilters struct {
	// Types is an allow-list of result types.
	Types []ResultType

	// Categories is an allow-list of categories. When set, results
	// without a category are dropped.
	Categories []string

	// MinRelevance drops results scoring below the threshold.
	MinRelevance int
}

// AllowsType reports whether results of type t pass the filter.
func (f SearchFilters) AllowsType(t ResultType) bool {
	if len(f.Types) == 0 {
		return true
	}
	for _, allowed := range f.Types {
		if allowed == t {
			return true
		}
	}
	return false
}

// AllowsCategory reports whether results with the given category pass
// the filter. Uncategorized results pass only when no category filter
// is active.
func (f SearchFilters) AllowsCategory(category string) bool {
	if len(f.Categories) == 0 {
		return true
	}
	if category == "" {
		return false
	}
	for _, allowed := range f.Categories {
		if allowed == category {
			return true
		}
	}
	return false
}

// SearchOptions configures a single dispatch.
type SearchOptions struct {
	// Filters narrows the sources and results considered.
	Filters SearchFilters

	// Limit is the maximum number of merged results (default 10).
	// Each adapter is also capped internally to this value.
	Limit int
}

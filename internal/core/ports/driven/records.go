package driven

import (
	"context"
	"time"
)

// ToolRecord is a marketplace tool row from the backing store.
type ToolRecord struct {
	ID          string
	Name        string
	Description string
	Category    string
	Active      bool
}

// ActivationRecord is a user's tool activation joined to its tool.
type ActivationRecord struct {
	ID          string
	UserID      string
	Status      string
	ActivatedAt time.Time
	Tool        ToolRecord
}

// UserRecord is an administrative user account row.
type UserRecord struct {
	ID     string
	Name   string
	Email  string
	Plan   string
	Status string
}

// ToolStore queries marketplace tool records.
type ToolStore interface {
	// FindActive returns up to limit active tools whose name,
	// description, or category contains term (case-insensitive).
	// The substring match is pushed down to the store.
	FindActive(ctx context.Context, term string, limit int) ([]ToolRecord, error)
}

// ActivationStore queries tool activations scoped to one user.
type ActivationStore interface {
	// ListActiveForUser returns the user's own active activations,
	// each joined to its tool row. There is no store-level text
	// filter here; relevance filtering happens in the adapter.
	ListActiveForUser(ctx context.Context, userID string, limit int) ([]ActivationRecord, error)
}

// UserStore queries user account records.
type UserStore interface {
	// Find returns up to limit users whose name, email, or plan
	// contains term (case-insensitive).
	Find(ctx context.Context, term string, limit int) ([]UserRecord, error)
}

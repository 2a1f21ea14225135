package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownIdentity indicates the caller identity is missing or empty.
	// Searches for unknown identities short-circuit to empty results.
	ErrUnknownIdentity = errors.New("unknown identity")

	// ErrUnsupportedType indicates an unknown result type.
	ErrUnsupportedType = errors.New("unsupported result type")

	// ErrSearchUnavailable indicates the search dispatcher is not configured.
	ErrSearchUnavailable = errors.New("search dispatcher unavailable")

	// ErrHistoryUnavailable indicates the recent-search store is not configured.
	// History features (listing, clearing) are disabled without it.
	ErrHistoryUnavailable = errors.New("recent-search store unavailable")
)

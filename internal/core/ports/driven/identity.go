package driven

import (
	"context"

	"github.com/custodia-labs/hubsearch/internal/core/domain"
)

// IdentityProvider answers authorization questions about a user.
// The user source consults it instead of trusting the role carried
// on the caller's identity.
type IdentityProvider interface {
	// Role returns the current role for the user ID.
	Role(ctx context.Context, userID string) (domain.Role, error)
}

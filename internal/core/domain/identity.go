package domain

// Role is a coarse authorization level attached to an identity.
type Role string

const (
	// RoleMember is a regular marketplace user.
	RoleMember Role = "member"

	// RoleAdmin may search administrative user records.
	RoleAdmin Role = "admin"
)

// Admin reports whether the role grants administrative access.
func (r Role) Admin() bool {
	return r == RoleAdmin
}

// Identity is the caller on whose behalf a search runs.
// The user source never trusts the Role carried here; it re-checks
// the role through the identity provider port.
type Identity struct {
	// UserID identifies the caller. Empty means unknown.
	UserID string

	// Role is the caller's last known role, informational only.
	Role Role
}

// Known reports whether the identity names an actual user.
func (i Identity) Known() bool {
	return i.UserID != ""
}

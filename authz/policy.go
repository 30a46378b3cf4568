package authz

// Role names recognized by the site. They come from the external identity
// provider's token claims.
const (
	RoleAdmin  = "Admin"
	RoleAuthor = "Author"
)

// Principal is the acting identity for one request, rebuilt fresh from the
// verified token on every request. A zero Principal is anonymous.
type Principal struct {
	ID          string
	DisplayName string
	Roles       []string
}

// IsAnonymous reports whether no authenticated identity is present.
func (p Principal) IsAnonymous() bool {
	return p.ID == ""
}

// HasRole reports whether the principal holds the named role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the principal holds at least one of the named roles.
func (p Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}

// CanMutate decides whether the principal may edit or delete a resource owned
// by ownerID: the owner may, and an Admin always may. For ownerless resources
// pass an empty ownerID, which degrades the check to "is Admin". Anonymous
// principals never may. Callers must surface a false result as a forbidden
// error, never as not-found.
func CanMutate(p Principal, ownerID string) bool {
	if p.HasRole(RoleAdmin) {
		return true
	}
	if p.IsAnonymous() || ownerID == "" {
		return false
	}
	return p.ID == ownerID
}

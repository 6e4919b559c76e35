// Package models holds the client-side records exchanged with the remote
// fletes API and the identity derived from the session token.
package models

// Identity is the signed-in user as described by the access token claims.
// It is never stored on its own; it is rebuilt from the token on start-up.
type Identity struct {
	ID            string
	Name          string
	Role          string
	PayrollNumber string
}

// HasRole reports whether the identity's role is one of roles.
func (i *Identity) HasRole(roles ...string) bool {
	if i == nil || i.Role == "" {
		return false
	}
	for _, r := range roles {
		if r == i.Role {
			return true
		}
	}
	return false
}

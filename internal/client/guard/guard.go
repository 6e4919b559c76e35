// Package guard decides whether session-dependent content may be shown.
// Nothing is cached: every call reads the current session.
package guard

import "github.com/dmitrijs2005/fletes/internal/client/models"

// SessionView is the read side of the session the gate needs.
type SessionView interface {
	IsAuthenticated() bool
	Identity() *models.Identity
}

// Allowed reports whether the session is signed in with one of roles.
func Allowed(s SessionView, roles ...string) bool {
	if s == nil || !s.IsAuthenticated() {
		return false
	}
	return s.Identity().HasRole(roles...)
}

// Gate renders content for the listed roles and Fallback for everyone else.
type Gate struct {
	Roles    []string
	Fallback func()
}

// Render runs content when allowed. It reports whether it did.
func (g Gate) Render(s SessionView, content func()) bool {
	if Allowed(s, g.Roles...) {
		content()
		return true
	}
	if g.Fallback != nil {
		g.Fallback()
	}
	return false
}

package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/fletes/internal/client/models"
)

type view struct {
	authenticated bool
	identity      *models.Identity
}

func (v view) IsAuthenticated() bool      { return v.authenticated }
func (v view) Identity() *models.Identity { return v.identity }

func TestAllowed(t *testing.T) {
	admin := &models.Identity{Name: "Ana", Role: "Admin"}
	viewer := &models.Identity{Name: "Luis", Role: "Viewer"}

	tests := []struct {
		name  string
		view  SessionView
		roles []string
		want  bool
	}{
		{"admin allowed", view{true, admin}, []string{"Admin"}, true},
		{"one of several roles", view{true, viewer}, []string{"Admin", "Viewer"}, true},
		{"wrong role", view{true, viewer}, []string{"Admin"}, false},
		{"signed out", view{false, admin}, []string{"Admin"}, false},
		{"authenticated without identity", view{true, nil}, []string{"Admin"}, false},
		{"no roles listed", view{true, admin}, nil, false},
		{"case sensitive", view{true, &models.Identity{Role: "admin"}}, []string{"Admin"}, false},
		{"nil session", nil, []string{"Admin"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.view, tt.roles...))
		})
	}
}

func TestGate_Render(t *testing.T) {
	var shown, fallback int
	g := Gate{Roles: []string{"Admin"}, Fallback: func() { fallback++ }}

	assert.True(t, g.Render(view{true, &models.Identity{Role: "Admin"}}, func() { shown++ }))
	assert.False(t, g.Render(view{true, &models.Identity{Role: "Viewer"}}, func() { shown++ }))

	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, fallback)
}

func TestGate_NoFallbackRendersNothing(t *testing.T) {
	called := false
	assert.False(t, Gate{Roles: []string{"Admin"}}.Render(view{}, func() { called = true }))
	assert.False(t, called)
}

func TestGate_ReevaluatesEveryCall(t *testing.T) {
	v := &view{authenticated: true, identity: &models.Identity{Role: "Admin"}}
	g := Gate{Roles: []string{"Admin"}}

	assert.True(t, g.Render(v, func() {}))
	v.identity = &models.Identity{Role: "Viewer"}
	assert.False(t, g.Render(v, func() {}))
}

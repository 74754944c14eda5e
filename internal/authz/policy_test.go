package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPerformAction(t *testing.T) {
	tests := []struct {
		name   string
		role   Role
		action string
		want   bool
	}{
		{"admin supprime un utilisateur", RoleAdmin, ActionDeleteUser, true},
		{"admin action arbitraire", RoleAdmin, "export_licenses", true},
		{"technicien crée un équipement", RoleTechnician, "create_equipment", true},
		{"technicien ne crée pas d'utilisateur", RoleTechnician, ActionCreateUser, false},
		{"technicien ne modifie pas d'utilisateur", RoleTechnician, ActionEditUser, false},
		{"technicien ne supprime pas d'utilisateur", RoleTechnician, ActionDeleteUser, false},
		{"utilisateur crée un ticket", RoleUser, ActionCreateTicket, true},
		{"utilisateur consulte", RoleUser, ActionView, true},
		{"utilisateur ne crée pas d'équipement", RoleUser, "create_equipment", false},
		{"utilisateur ne supprime rien", RoleUser, "delete_ticket", false},
		{"rôle absent refuse tout", RoleUnknown, ActionView, false},
		{"rôle inconnu refuse tout", Role("superviseur"), ActionView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPerformAction(tt.role, tt.action))
		})
	}
}

func TestCanAccessPage(t *testing.T) {
	allPages := []string{"/", "/employees", "/equipment", "/tickets", "/users", "/licenses", "/inventory", "/planning", "/settings"}

	for _, p := range allPages {
		assert.True(t, CanAccessPage(RoleAdmin, p), p)
		assert.True(t, CanAccessPage(RoleTechnician, p), p)
	}

	userPages := map[string]bool{
		"/": true, "/employees": true, "/equipment": true, "/tickets": true,
	}
	for _, p := range allPages {
		assert.Equal(t, userPages[p], CanAccessPage(RoleUser, p), p)
	}

	assert.False(t, CanAccessPage(RoleUnknown, "/"))
	assert.False(t, CanAccessPage(Role("invité"), "/tickets"))
}

func TestHasAccess(t *testing.T) {
	allowed := map[Role]bool{RoleAdmin: true, RoleTechnician: true}

	assert.True(t, HasAccess(RoleAdmin, allowed))
	assert.True(t, HasAccess(RoleTechnician, allowed))
	assert.False(t, HasAccess(RoleUser, allowed))
	assert.False(t, HasAccess(RoleUnknown, allowed))
	assert.False(t, HasAccess(Role("autre"), map[Role]bool{Role("autre"): true}),
		"un rôle hors énumération ne doit jamais passer")
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleTechnician, ParseRole("technicien"))
	assert.Equal(t, RoleUser, ParseRole("utilisateur"))
	assert.Equal(t, RoleUnknown, ParseRole("root"))
	assert.Equal(t, RoleUnknown, ParseRole(""))
}

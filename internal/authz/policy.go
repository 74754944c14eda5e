package authz

// Rôles fermés du parc. Toute autre valeur est refusée partout.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technicien"
	RoleUser       Role = "utilisateur"
	RoleUnknown    Role = ""
)

func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleTechnician, RoleUser:
		return Role(s)
	}
	return RoleUnknown
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTechnician || r == RoleUser
}

// Actions nommées, telles qu'utilisées par les écrans et les routes.
const (
	ActionView         = "view"
	ActionCreateUser   = "create_user"
	ActionEditUser     = "edit_user"
	ActionDeleteUser   = "delete_user"
	ActionCreateTicket = "create_ticket"
)

// Pages accessibles au rôle utilisateur. admin et technicien passent partout.
var userAllowedPages = map[string]bool{
	"/":          true,
	"/employees": true,
	"/equipment": true,
	"/tickets":   true,
}

// Actions interdites au technicien (gestion des comptes).
var technicianDeniedActions = map[string]bool{
	ActionCreateUser: true,
	ActionEditUser:   true,
	ActionDeleteUser: true,
}

// Actions permises au rôle utilisateur.
var userAllowedActions = map[string]bool{
	ActionCreateTicket: true,
	ActionView:         true,
}

// HasAccess — simple test d'appartenance. Refus par défaut.
func HasAccess(role Role, allowedRoles map[Role]bool) bool {
	if !role.Valid() {
		return false
	}
	return allowedRoles[role]
}

// CanAccessPage décide si une page de navigation est permise pour un rôle.
// admin et technicien passent partout; utilisateur n'a qu'une liste blanche.
func CanAccessPage(role Role, page string) bool {
	switch role {
	case RoleAdmin, RoleTechnician:
		return true
	case RoleUser:
		return userAllowedPages[page]
	}
	return false
}

// CanPerformAction décide si un verbe d'action est permis pour un rôle.
// admin: tout; technicien: tout sauf la gestion des comptes; utilisateur:
// liste blanche; rôle absent ou inconnu: rien.
func CanPerformAction(role Role, action string) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleTechnician:
		return !technicianDeniedActions[action]
	case RoleUser:
		return userAllowedActions[action]
	}
	return false
}

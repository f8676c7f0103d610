package entities

type UserRole string

const (
	RoleColaborador       UserRole = "COLABORADOR"
	RoleGreenBelt         UserRole = "GREEN_BELT"
	RoleComite            UserRole = "COMITE"
	RoleAgenteImplantacao UserRole = "AGENTE_IMPLANTACAO"
	RoleAdmin             UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleColaborador, RoleGreenBelt, RoleComite, RoleAgenteImplantacao, RoleAdmin:
		return true
	}
	return false
}

// IsManagement reports whether the role belongs to program management, i.e.
// anything other than a regular employee.
func (r UserRole) IsManagement() bool {
	return r.Valid() && r != RoleColaborador
}

// HasAdminOverride reports whether the role may write outside cycle windows.
func (r UserRole) HasAdminOverride() bool {
	return r == RoleAdmin
}

// Principal is the authenticated caller, as asserted by the identity token.
type Principal struct {
	Registration string   `json:"registration"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	IsManager    bool     `json:"is_manager"`
}

func (p Principal) HasAnyRole(roles ...UserRole) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

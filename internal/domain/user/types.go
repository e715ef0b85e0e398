package user

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "USUARIO"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// RoleOrMember degrades an unknown stored role to Member instead of failing.
// Session reads must never break on a corrupt role value.
func RoleOrMember(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleMember
	}
	return role
}

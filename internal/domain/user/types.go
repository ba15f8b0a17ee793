package user

// Role is the active mode of an account. One account switches between the two.
type Role string

const (
	RoleClient Role = "client"
	RoleSeller Role = "seller"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleSeller:
		return true
	default:
		return false
	}
}

func (r Role) Toggle() Role {
	if r == RoleSeller {
		return RoleClient
	}
	return RoleSeller
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Identity is the authenticated caller, resolved once from a token and passed by value.
type Identity struct {
	UserID int64
	Role   Role
}

func (i Identity) IsSeller() bool {
	return i.Role == RoleSeller
}

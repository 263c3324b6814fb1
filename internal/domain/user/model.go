package user

// Role is the access level carried by an authenticated principal.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// Principal is the identity attached to an authenticated request. Tokens
// are issued and validated by the gatekeeper account service; this core
// only consumes the introspection result.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

func (p Principal) CanPublish() bool {
	return p.Role == RoleAdmin || p.Role == RoleEditor
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

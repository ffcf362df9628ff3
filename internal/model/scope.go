package model

// Roles.
const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst"
	RoleSystem  = "system"
)

// Scope carries the authenticated caller identity through a request.
type Scope struct {
	UserID   string
	Username string
	Role     string
}

// SystemScope is the scope used by background consumers.
var SystemScope = Scope{
	UserID:   "system",
	Username: "system",
	Role:     RoleSystem,
}

// IsAdmin reports whether the scope carries the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

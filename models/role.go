package models

import "fmt"

// Role is the closed set of platform roles. Role checks go through this type
// only, never through raw header strings at call sites.
type Role string

const (
	RoleClient       Role = "client"
	RolePhotographer Role = "photographer"
	RoleEditor       Role = "editor"
	RoleAdmin        Role = "admin"
	RoleSuperAdmin   Role = "superadmin"
)

// ParseRole maps a raw claim value onto a known Role.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleClient, RolePhotographer, RoleEditor, RoleAdmin, RoleSuperAdmin:
		return Role(raw), nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// IsAdmin reports whether the role carries administrative authority.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// AuthContext is the current session, carried explicitly into services and the
// gateway instead of being read from ambient globals.
type AuthContext struct {
	UserID string
	Role   Role
	Token  string
}

// HasToken reports whether a bearer token is present for remote calls.
func (a AuthContext) HasToken() bool {
	return a.Token != ""
}

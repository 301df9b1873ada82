//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Role is the access level of a session.
type Role string

// Supported roles.
const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole converts a string to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User is the identity of the active session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// SessionResponse is returned by login and signup.
type SessionResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

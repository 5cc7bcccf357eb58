// Package entities contains core business entities.
package entities

// Role enumerates user authority levels.
type Role string

const (
	// RoleAdmin is allowed every action system-wide.
	RoleAdmin Role = "ADMIN"
	// RoleManager manages tasks and evaluations within a team.
	RoleManager Role = "MANAGER"
	// RoleUser performs assigned tasks.
	RoleUser Role = "USER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// User is a domain representation of a registered person.
type User struct {
	ID     int64
	Email  string
	Role   Role
	TeamID *int64
}

// SameTeam reports whether both users belong to the same team.
func (u User) SameTeam(other User) bool {
	return u.TeamID != nil && other.TeamID != nil && *u.TeamID == *other.TeamID
}

package domain

import "time"

// Role is the closed set of user roles. Keeping it a dedicated type forces
// every consumer through ParseRole, so an unknown role never leaks past the
// authorization gate.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps a raw string onto a known Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// User models a registered account. Accounts start inactive and become
// active only when their registration confirmation is consumed in time.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Activated    bool      `json:"activated"`
	RegisteredAt time.Time `json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

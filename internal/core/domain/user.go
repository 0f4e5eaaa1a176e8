package domain

import "time"

// Role is the closed set of dashboard roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

// ParseRole validates a raw role string from storage or a token claim.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleWorker:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models a dashboard operator account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

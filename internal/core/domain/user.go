package domain

import "time"

// UserRole determines what an authenticated committee member may do.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"  // full access, may mutate state
	RoleViewer UserRole = "viewer" // read-only report access
)

// User is a committee member login. Only the hash of the password is kept.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

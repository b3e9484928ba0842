package models

import "time"

// UserRole is the closed set of roles recognised by the API.
type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleAdmin   UserRole = "admin"
	RoleFaculty UserRole = "faculty"
)

// Valid reports whether the role is one of the recognised values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleFaculty:
		return true
	}
	return false
}

// User represents an account stored in the users table. The password
// hash is never serialized.
type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

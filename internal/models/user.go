package models

import "time"

// UserRole represents the two roles the department portal knows: the
// timetable incharge, who manages the catalog and runs generation, and a
// class representative, who reads published timetables.
type UserRole string

const (
	RoleIncharge UserRole = "incharge"
	RoleCR       UserRole = "cr"
)

// User represents an application user stored in the users table.
type User struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     string     `db:"full_name" json:"full_name"`
	Role         UserRole   `db:"role" json:"role"`
	Active       bool       `db:"active" json:"active"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

package models

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a member of the role set.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// Account is the persisted identity record. Email is the unique key and is
// stored exactly as submitted; no case normalization happens anywhere.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

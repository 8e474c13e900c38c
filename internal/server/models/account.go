// Package models contains persisted server-side entities.
package models

import "time"

// Role is the authorization role carried in session tokens.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// AccountStatus gates whether an account is permitted to authenticate.
type AccountStatus string

const (
	StatusPending  AccountStatus = "PENDING"
	StatusApproved AccountStatus = "APPROVED"
)

// Account is a registered identity. PasswordHash holds the argon2id PHC
// string; the original secret is never stored. Username is the URL-safe
// handle derived from FullName at registration and is stable thereafter.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Username     string
	Position     string
	Role         Role
	Status       AccountStatus
	CreatedAt    time.Time
}

package user

import "time"

type User struct {
	ID            string
	Email         string
	PasswordHash  *string
	Role          Role
	OAuthProvider *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

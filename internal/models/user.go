package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// InternalUser is a staff account allowed to sign in to the admin API.
type InternalUser struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin reports whether the user may edit site content.
func (u *InternalUser) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

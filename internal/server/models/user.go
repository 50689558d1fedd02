// Package models contains the persisted data structures for the server.
package models

import "time"

// Roles a user account can carry.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a persisted account record. Email is stored lowercased and is
// unique at the storage layer. PasswordHash never leaves the service layer;
// handlers only ever see PublicUser.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// PublicUser is the client-visible projection of a User.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public strips the credential fields from a User.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

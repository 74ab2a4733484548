package models

import "time"

// Role represents user roles in the system
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// User represents a registered rider or administrator.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	NIM          string    `json:"nim"`
	PasswordHash string    `json:"password_hash"`
	Faculty      string    `json:"faculty"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns the user without the password hash, for API responses.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Name:    u.Name,
		NIM:     u.NIM,
		Faculty: u.Faculty,
		Role:    u.Role,
	}
}

// PublicUser is the client-facing user shape.
type PublicUser struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	NIM     string `json:"nim"`
	Faculty string `json:"faculty"`
	Role    Role   `json:"role"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"nama"`
	NIM      string `json:"nim"`
	Password string `json:"password"`
	Faculty  string `json:"faculty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	NIM      string `json:"nim"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful login or registration.
type AuthResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// Claims represents JWT claims
type Claims struct {
	UserID int    `json:"user_id"`
	NIM    string `json:"nim"`
	Role   Role   `json:"role"`
	Exp    int64  `json:"exp"`
}

// IsValidRole checks if a role is valid
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleStudent:
		return true
	default:
		return false
	}
}

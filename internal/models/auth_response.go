package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Token     string    `json:"token"` // JWT token
}

// RegisterResponse represents the response after user registration
type RegisterResponse struct {
	Message string       `json:"message"`
	User    AuthResponse `json:"user"`
}

// ProfileResponse represents the caller's own profile
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

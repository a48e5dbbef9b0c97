package dto

import (
	"time"

	"hardpos/internal/domain/auth"
)

// LoginRequest for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the signed-in user.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// FromLoginResult creates response from domain result.
func FromLoginResult(r *auth.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		User:      FromUser(r.User),
	}
}

// CreateUserRequest for registering a new account.
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required,oneof=admin manager staff"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	Role        string `json:"role"`
}

// FromUser creates UserResponse from domain user.
func FromUser(u *auth.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	}
}

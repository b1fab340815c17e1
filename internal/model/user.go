package model

import "time"

// User roles
const (
	UserRolePlanner = "planner"
	UserRoleAdmin   = "admin"
)

// Password limits
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// User is a planner account. The admin role is assigned out of band, never
// through the registration endpoint.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedOn    time.Time `json:"created_on"`
}

// RegisterRequest is the payload for POST /v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the payload for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by login: a bearer token and its lifetime.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        *User  `json:"user"`
}

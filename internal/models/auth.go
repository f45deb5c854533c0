package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest holds credentials submitted by the login form.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SessionClaims is the JWT payload carried in the auth cookie.
type SessionClaims struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	Name   string      `json:"name"`
	Role   StudentRole `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the session belongs to an admin account.
func (c *SessionClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

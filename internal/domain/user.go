package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID    int      `json:"user_id"`
	UserName  string   `json:"user_name"`
	UserEmail string   `json:"user_email"`
	UserRole  UserRole `json:"user_role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.UserRole == UserRoleAdmin
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

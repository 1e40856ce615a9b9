package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	// GetByUsernameOrEmail returns any user matching either field.
	GetByUsernameOrEmail(ctx context.Context, username, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored account with its password material.
type User struct {
	ID           int64
	Username     string
	Email        string
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
}

// CreateAccountParams contains parameters to register an account.
type CreateAccountParams struct {
	Username string
	Password string
	Email    string
}

// Session is what a successful login reveals about the user.
type Session struct {
	UserID   int64
	Username string
}

package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists means the username or email is already registered.
	ErrAlreadyExists = errors.New("username or email already exists")
	// ErrInvalidCredentials covers both an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound means the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUpstream means the restaurant search provider failed or answered with a malformed payload.
	ErrUpstream = errors.New("restaurant provider error")
)

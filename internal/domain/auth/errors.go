package auth

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidID       = errors.New("invalid identifier")
	ErrInvalidRole     = errors.New("invalid role")
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

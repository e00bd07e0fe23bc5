package account

import "errors"

var (
	// ErrEmailTaken is returned when a registration reuses an email address.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrUsernameTaken is returned when a registration reuses a username.
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrInvalidCredentials is returned on a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

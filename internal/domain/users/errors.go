package users

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUser is returned on login for an unknown username.
	ErrInvalidUser = errors.New("invalid user")

	// ErrInvalidPassword is returned on login when the password does not match.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrDuplicateUsername is returned when registering a username that is taken.
	ErrDuplicateUsername = errors.New("duplicate username")

	// ErrPasswordTooLong is returned when a password exceeds what the hasher accepts.
	ErrPasswordTooLong = errors.New("password too long")
)

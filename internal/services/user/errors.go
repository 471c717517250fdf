package user

import "errors"

// Domain errors for user service
var (
	// Validation errors
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrUsernameTooLong = errors.New("username cannot exceed 50 characters")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrPasswordTooLong = errors.New("password cannot exceed 72 bytes")
	ErrInvalidEmail    = errors.New("email must contain '@'")
	ErrInvalidUserID   = errors.New("invalid user ID")

	// Business logic errors
	ErrDuplicateUsername = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
)

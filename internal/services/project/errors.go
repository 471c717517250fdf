package project

import "errors"

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName        = errors.New("project name cannot be empty")
	ErrNameTooLong      = errors.New("project name cannot exceed 100 characters")
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrMissingStartDate = errors.New("project start date is required")
	ErrMissingEndDate   = errors.New("project end date is required")

	// Business logic errors
	ErrOwnerNotFound = errors.New("owning user not found")
)

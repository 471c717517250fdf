package activity

import (
	"errors"

	"github.com/thenoetrevino/avance/internal/models"
)

// Domain errors for activity service
var (
	// Validation errors
	ErrEmptyName         = errors.New("activity name cannot be empty")
	ErrNameTooLong       = errors.New("activity name cannot exceed 100 characters")
	ErrInvalidActivityID = errors.New("invalid activity ID")
	ErrInvalidProjectID  = errors.New("invalid project ID")
	ErrMissingStartDate  = errors.New("activity start date is required")
	ErrMissingEndDate    = errors.New("activity end date is required")
	ErrInvalidStatus     = models.ErrInvalidStatus

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")
)

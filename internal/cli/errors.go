package cli

import (
	"errors"

	"github.com/thenoetrevino/avance/internal/database"
	"github.com/thenoetrevino/avance/internal/models"
	activityservice "github.com/thenoetrevino/avance/internal/services/activity"
	projectservice "github.com/thenoetrevino/avance/internal/services/project"
	userservice "github.com/thenoetrevino/avance/internal/services/user"
)

var validationErrors = []error{
	models.ErrInvalidStatus,
	database.ErrCheckViolation,
	database.ErrNotNullViolation,
	userservice.ErrEmptyUsername,
	userservice.ErrUsernameTooLong,
	userservice.ErrEmptyPassword,
	userservice.ErrPasswordTooLong,
	userservice.ErrInvalidEmail,
	userservice.ErrInvalidUserID,
	projectservice.ErrEmptyName,
	projectservice.ErrNameTooLong,
	projectservice.ErrInvalidProjectID,
	projectservice.ErrInvalidUserID,
	projectservice.ErrMissingStartDate,
	projectservice.ErrMissingEndDate,
	activityservice.ErrEmptyName,
	activityservice.ErrNameTooLong,
	activityservice.ErrInvalidActivityID,
	activityservice.ErrInvalidProjectID,
	activityservice.ErrMissingStartDate,
	activityservice.ErrMissingEndDate,
}

var notFoundErrors = []error{
	userservice.ErrUserNotFound,
	projectservice.ErrOwnerNotFound,
	activityservice.ErrProjectNotFound,
	database.ErrForeignKeyViolation,
}

var schemaErrors = []error{
	database.ErrSchemaVersionMismatch,
	database.ErrSchemaDowngrade,
	database.ErrDirtySchema,
}

// Classify maps a service or store error to an exit code and an error code
// for JSON output
func Classify(err error) (exitCode int, code string) {
	switch {
	case errors.Is(err, userservice.ErrDuplicateUsername):
		return ExitValidation, "USERNAME_TAKEN"
	case errors.Is(err, ErrNoCurrentUser):
		return ExitUsage, "NO_CURRENT_USER"
	case isAny(err, notFoundErrors):
		return ExitNotFound, "NOT_FOUND"
	case isAny(err, validationErrors):
		return ExitValidation, "VALIDATION_ERROR"
	case isAny(err, schemaErrors):
		return ExitDataErr, "SCHEMA_ERROR"
	case errors.Is(err, database.ErrBusy):
		return ExitError, "DATABASE_BUSY"
	}
	return ExitError, "INTERNAL_ERROR"
}

// Report prints err through the formatter and returns it with the exit code
// Classify picks
func (f *OutputFormatter) Report(err error) error {
	exitCode, code := Classify(err)
	suggestion := ""
	if exitCode == ExitUsage && errors.Is(err, ErrNoCurrentUser) {
		suggestion = "Log in with 'eval $(avance user login --username <name> --password-stdin)' or pass --user"
	}
	return f.Fail(exitCode, code, err, suggestion)
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

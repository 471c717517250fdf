package database

import (
	"errors"
	"fmt"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// FailedInsertID is returned by every Insert alongside a non-nil error
const FailedInsertID int64 = -1

// Constraint kinds surfaced by the store. Match them with errors.Is.
var (
	// ErrDuplicateKey is returned on UNIQUE or PRIMARY KEY violations
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrForeignKeyViolation is returned when a row references a missing parent
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrCheckViolation is returned when a CHECK constraint rejects a value
	ErrCheckViolation = errors.New("check constraint violation")

	// ErrNotNullViolation is returned when a NOT NULL column receives NULL
	ErrNotNullViolation = errors.New("not null constraint violation")

	// ErrBusy is returned when the database stayed locked past busy_timeout
	ErrBusy = errors.New("database is busy")
)

// DBError pairs one of the sentinels above with the driver error that caused it
type DBError struct {
	Sentinel error
	Cause    error
}

func (e *DBError) Error() string {
	return fmt.Sprintf("%s: %v", e.Sentinel, e.Cause)
}

func (e *DBError) Is(target error) bool { return errors.Is(e.Sentinel, target) }
func (e *DBError) Unwrap() error        { return e.Cause }

// mapError translates SQLite driver errors into DBError values.
// Unrecognised errors are returned unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var dbe *DBError
	if errors.As(err, &dbe) {
		return err
	}

	var serr *sqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return &DBError{Sentinel: ErrDuplicateKey, Cause: err}
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return &DBError{Sentinel: ErrForeignKeyViolation, Cause: err}
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return &DBError{Sentinel: ErrCheckViolation, Cause: err}
		case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
			return &DBError{Sentinel: ErrNotNullViolation, Cause: err}
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return &DBError{Sentinel: ErrBusy, Cause: err}
		}
	}

	// Primary result codes carry no constraint kind; fall back to the message
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return &DBError{Sentinel: ErrDuplicateKey, Cause: err}
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &DBError{Sentinel: ErrForeignKeyViolation, Cause: err}
	case strings.Contains(msg, "CHECK constraint failed"):
		return &DBError{Sentinel: ErrCheckViolation, Cause: err}
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return &DBError{Sentinel: ErrNotNullViolation, Cause: err}
	case strings.Contains(msg, "database is locked"):
		return &DBError{Sentinel: ErrBusy, Cause: err}
	}
	return err
}

// IsDuplicateKey reports whether err is a UNIQUE violation
func IsDuplicateKey(err error) bool { return errors.Is(err, ErrDuplicateKey) }

// IsForeignKeyViolation reports whether err references a missing parent row
func IsForeignKeyViolation(err error) bool { return errors.Is(err, ErrForeignKeyViolation) }

// IsCheckViolation reports whether err was rejected by a CHECK constraint
func IsCheckViolation(err error) bool { return errors.Is(err, ErrCheckViolation) }

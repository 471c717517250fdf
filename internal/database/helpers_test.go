package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestNullStringConversions(t *testing.T) {
	if got := toNullString(""); got.Valid {
		t.Error("Empty string should be stored as NULL")
	}
	if got := toNullString("x"); !got.Valid || got.String != "x" {
		t.Errorf("Unexpected NullString: %+v", got)
	}
	if got := NullStringToString(sql.NullString{}); got != "" {
		t.Errorf("NULL should read as empty string, got %q", got)
	}
	if got := NullStringToString(sql.NullString{String: "y", Valid: true}); got != "y" {
		t.Errorf("Expected y, got %q", got)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		msg  string
		want error
	}{
		{"constraint failed: UNIQUE constraint failed: users.username (2067)", ErrDuplicateKey},
		{"constraint failed: FOREIGN KEY constraint failed (787)", ErrForeignKeyViolation},
		{"constraint failed: CHECK constraint failed: status IN (...) (275)", ErrCheckViolation},
		{"constraint failed: NOT NULL constraint failed: projects.name (1299)", ErrNotNullViolation},
		{"database is locked (5)", ErrBusy},
	}

	for _, tt := range tests {
		cause := errors.New(tt.msg)
		got := mapError(cause)
		if !errors.Is(got, tt.want) {
			t.Errorf("mapError(%q) = %v, want %v", tt.msg, got, tt.want)
		}
		if !errors.Is(got, cause) {
			t.Errorf("mapError(%q) should keep the cause in the chain", tt.msg)
		}
	}
}

func TestMapError_Passthrough(t *testing.T) {
	if mapError(nil) != nil {
		t.Error("nil should stay nil")
	}

	plain := errors.New("disk I/O error")
	if got := mapError(plain); got != plain {
		t.Errorf("Unrecognised errors should pass through, got %v", got)
	}

	mapped := mapError(errors.New("UNIQUE constraint failed: users.username"))
	wrapped := fmt.Errorf("outer: %w", mapped)
	if got := mapError(wrapped); got != wrapped {
		t.Error("Already mapped errors should not be wrapped twice")
	}
}

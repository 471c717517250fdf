package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Status Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"Planned", StatusPlanned},
		{"planned", StatusPlanned},
		{"  PLANNED ", StatusPlanned},
		{"InProgress", StatusInProgress},
		{"in-progress", StatusInProgress},
		{"in_progress", StatusInProgress},
		{"in progress", StatusInProgress},
		{"done", StatusDone},
		{"Done", StatusDone},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	for _, input := range []string{"", "finished", "Realizado", "todo"} {
		_, err := ParseStatus(input)
		if err == nil {
			t.Errorf("ParseStatus(%q) expected error", input)
			continue
		}
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("ParseStatus(%q) error should wrap ErrInvalidStatus, got %v", input, err)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Status("Cancelled").Valid() {
		t.Error("Cancelled should not be valid")
	}
	if Status("").Valid() {
		t.Error("empty status should not be valid")
	}
}

// ============================================================================
// Struct Tests
// ============================================================================

func TestGetID(t *testing.T) {
	u := &User{ID: 1}
	p := &Project{ID: 2}
	a := &Activity{ID: 3}

	if u.GetID() != 1 || p.GetID() != 2 || a.GetID() != 3 {
		t.Errorf("GetID mismatch: user=%d project=%d activity=%d", u.GetID(), p.GetID(), a.GetID())
	}
}

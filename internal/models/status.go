package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an activity.
// The stored values must match the CHECK constraint on activities.status.
type Status string

const (
	StatusPlanned    Status = "Planned"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

// AllStatuses lists every persisted status in lifecycle order
var AllStatuses = []Status{StatusPlanned, StatusInProgress, StatusDone}

// Valid reports whether s is one of the persisted statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus maps user input to a Status.
// Matching is case-insensitive and ignores '-', '_' and spaces,
// so "in-progress", "in_progress" and "InProgress" are equivalent.
func ParseStatus(input string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)

	for _, s := range AllStatuses {
		if strings.ToLower(string(s)) == normalized {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be: planned, in-progress, done)", ErrInvalidStatus, input)
}

// Package activity holds CRUD for the activities that make up a project
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/avance/internal/database"
	"github.com/thenoetrevino/avance/internal/models"
)

// Service defines all activity-related business operations
type Service interface {
	// Read operations
	ListActivities(ctx context.Context, projectID int64) ([]*models.Activity, error)
	GetActivity(ctx context.Context, id int64) (*models.Activity, error)

	// Write operations
	CreateActivity(ctx context.Context, a models.Activity) (int64, error)
	UpdateActivity(ctx context.Context, a models.Activity) (int64, error)
	DeleteActivity(ctx context.Context, id int64) (int64, error)
}

// repository defines the data access methods needed by the activity service
type repository interface {
	InsertActivity(ctx context.Context, projectID int64, name, description, startDate, endDate string, status models.Status) (int64, error)
	GetActivitiesByProject(ctx context.Context, projectID int64) ([]*models.Activity, error)
	GetActivityByID(ctx context.Context, id int64) (*models.Activity, error)
	UpdateActivity(ctx context.Context, id int64, name, description, startDate, endDate string, status models.Status) (int64, error)
	DeleteActivity(ctx context.Context, id int64) (int64, error)
}

type service struct {
	repo repository
}

// NewService creates a new activity service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// ListActivities returns the project's activities, earliest start date first
func (s *service) ListActivities(ctx context.Context, projectID int64) ([]*models.Activity, error) {
	if projectID <= 0 {
		return nil, ErrInvalidProjectID
	}
	return s.repo.GetActivitiesByProject(ctx, projectID)
}

// GetActivity retrieves an activity by id. A missing activity yields nil, nil.
func (s *service) GetActivity(ctx context.Context, id int64) (*models.Activity, error) {
	if id <= 0 {
		return nil, ErrInvalidActivityID
	}
	return s.repo.GetActivityByID(ctx, id)
}

// CreateActivity inserts a and returns its id, or database.FailedInsertID on failure
func (s *service) CreateActivity(ctx context.Context, a models.Activity) (int64, error) {
	if a.ProjectID <= 0 {
		return database.FailedInsertID, ErrInvalidProjectID
	}
	if err := validate(a); err != nil {
		return database.FailedInsertID, err
	}

	id, err := s.repo.InsertActivity(ctx, a.ProjectID, a.Name, a.Description, a.StartDate, a.EndDate, a.Status)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return database.FailedInsertID, fmt.Errorf("%w: %d: %w", ErrProjectNotFound, a.ProjectID, err)
		}
		return database.FailedInsertID, fmt.Errorf("failed to create activity: %w", err)
	}

	slog.Debug("activity created", "activity_id", id, "project_id", a.ProjectID, "status", a.Status)
	return id, nil
}

// UpdateActivity overwrites every editable field of a.ID, status included.
// The owning project is not changed. Returns the number of rows updated.
func (s *service) UpdateActivity(ctx context.Context, a models.Activity) (int64, error) {
	if a.ID <= 0 {
		return 0, ErrInvalidActivityID
	}
	if err := validate(a); err != nil {
		return 0, err
	}

	affected, err := s.repo.UpdateActivity(ctx, a.ID, a.Name, a.Description, a.StartDate, a.EndDate, a.Status)
	if err != nil {
		return 0, fmt.Errorf("failed to update activity: %w", err)
	}

	slog.Debug("activity updated", "activity_id", a.ID, "status", a.Status, "affected", affected)
	return affected, nil
}

// DeleteActivity removes a single activity
func (s *service) DeleteActivity(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, ErrInvalidActivityID
	}

	affected, err := s.repo.DeleteActivity(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete activity: %w", err)
	}

	slog.Debug("activity deleted", "activity_id", id, "affected", affected)
	return affected, nil
}

func validate(a models.Activity) error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if len(a.Name) > 100 {
		return ErrNameTooLong
	}
	if strings.TrimSpace(a.StartDate) == "" {
		return ErrMissingStartDate
	}
	if strings.TrimSpace(a.EndDate) == "" {
		return ErrMissingEndDate
	}
	if !a.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, a.Status)
	}
	return nil
}

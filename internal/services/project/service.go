// Package project holds project CRUD and progress reporting
package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/avance/internal/database"
	"github.com/thenoetrevino/avance/internal/models"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	ListProjects(ctx context.Context, userID int64) ([]*models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	GetProjectProgress(ctx context.Context, id int64) (float64, error)

	// Write operations
	CreateProject(ctx context.Context, p models.Project) (int64, error)
	UpdateProject(ctx context.Context, p models.Project) (int64, error)
	DeleteProject(ctx context.Context, id int64) (int64, error)
}

// repository defines the data access methods needed by the project service
type repository interface {
	InsertProject(ctx context.Context, userID int64, name, description, startDate, endDate string) (int64, error)
	GetProjectsByUser(ctx context.Context, userID int64) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, name, description, startDate, endDate string) (int64, error)
	DeleteProject(ctx context.Context, id int64) (int64, error)
	CountActivities(ctx context.Context, projectID int64, status *models.Status) (int, error)
}

type service struct {
	repo repository
}

// NewService creates a new project service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// ListProjects returns the user's projects, newest start date first
func (s *service) ListProjects(ctx context.Context, userID int64) ([]*models.Project, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	return s.repo.GetProjectsByUser(ctx, userID)
}

// GetProject retrieves a project by id. A missing project yields nil, nil.
func (s *service) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	if id <= 0 {
		return nil, ErrInvalidProjectID
	}
	return s.repo.GetProjectByID(ctx, id)
}

// CreateProject inserts p and returns its id, or database.FailedInsertID on failure
func (s *service) CreateProject(ctx context.Context, p models.Project) (int64, error) {
	if p.UserID <= 0 {
		return database.FailedInsertID, ErrInvalidUserID
	}
	if err := validate(p); err != nil {
		return database.FailedInsertID, err
	}

	id, err := s.repo.InsertProject(ctx, p.UserID, p.Name, p.Description, p.StartDate, p.EndDate)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return database.FailedInsertID, fmt.Errorf("%w: user %d: %w", ErrOwnerNotFound, p.UserID, err)
		}
		return database.FailedInsertID, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Debug("project created", "project_id", id, "user_id", p.UserID)
	return id, nil
}

// UpdateProject overwrites the name, description and dates of p.ID.
// The owning user is not changed. Returns the number of rows updated.
func (s *service) UpdateProject(ctx context.Context, p models.Project) (int64, error) {
	if p.ID <= 0 {
		return 0, ErrInvalidProjectID
	}
	if err := validate(p); err != nil {
		return 0, err
	}

	affected, err := s.repo.UpdateProject(ctx, p.ID, p.Name, p.Description, p.StartDate, p.EndDate)
	if err != nil {
		return 0, fmt.Errorf("failed to update project: %w", err)
	}

	slog.Debug("project updated", "project_id", p.ID, "affected", affected)
	return affected, nil
}

// DeleteProject removes the project and its activities
func (s *service) DeleteProject(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, ErrInvalidProjectID
	}

	affected, err := s.repo.DeleteProject(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete project: %w", err)
	}

	slog.Debug("project deleted", "project_id", id, "affected", affected)
	return affected, nil
}

// GetProjectProgress returns the fraction of the project's activities that are
// Done, in [0, 1]. A project without activities (or an unknown id) reports 0.
func (s *service) GetProjectProgress(ctx context.Context, id int64) (float64, error) {
	if id <= 0 {
		return 0, ErrInvalidProjectID
	}

	total, err := s.repo.CountActivities(ctx, id, nil)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	done := models.StatusDone
	completed, err := s.repo.CountActivities(ctx, id, &done)
	if err != nil {
		return 0, err
	}

	return float64(completed) / float64(total), nil
}

func validate(p models.Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if len(p.Name) > 100 {
		return ErrNameTooLong
	}
	if strings.TrimSpace(p.StartDate) == "" {
		return ErrMissingStartDate
	}
	if strings.TrimSpace(p.EndDate) == "" {
		return ErrMissingEndDate
	}
	return nil
}

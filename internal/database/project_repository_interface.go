package database

import (
	"context"

	"github.com/thenoetrevino/avance/internal/models"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	GetProjectsByUser(ctx context.Context, userID int64) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*models.Project, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	InsertProject(ctx context.Context, userID int64, name, description, startDate, endDate string) (int64, error)
	UpdateProject(ctx context.Context, id int64, name, description, startDate, endDate string) (int64, error)
	DeleteProject(ctx context.Context, id int64) (int64, error)
}

// ProjectRepository combines all project-related operations.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}

package database

import (
	"context"

	"github.com/thenoetrevino/avance/internal/models"
)

// ActivityReader defines read operations for activities.
type ActivityReader interface {
	GetActivitiesByProject(ctx context.Context, projectID int64) ([]*models.Activity, error)
	GetActivityByID(ctx context.Context, id int64) (*models.Activity, error)
	CountActivities(ctx context.Context, projectID int64, status *models.Status) (int, error)
}

// ActivityWriter defines write operations for activities.
type ActivityWriter interface {
	InsertActivity(ctx context.Context, projectID int64, name, description, startDate, endDate string, status models.Status) (int64, error)
	UpdateActivity(ctx context.Context, id int64, name, description, startDate, endDate string, status models.Status) (int64, error)
	DeleteActivity(ctx context.Context, id int64) (int64, error)
}

// ActivityRepository combines all activity-related operations.
type ActivityRepository interface {
	ActivityReader
	ActivityWriter
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/avance/internal/models"
)

// ActivityRepo handles all activity-related database operations.
type ActivityRepo struct {
	db *sql.DB
}

// InsertActivity stores an activity under projectID and returns its id.
// A missing project wraps ErrForeignKeyViolation, an unknown status ErrCheckViolation.
func (r *ActivityRepo) InsertActivity(ctx context.Context, projectID int64, name, description, startDate, endDate string, status models.Status) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO activities (project_id, name, description, start_date, end_date, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		projectID, name, toNullString(description), startDate, endDate, string(status),
	)
	if err != nil {
		return FailedInsertID, fmt.Errorf("failed to insert activity '%s': %w", name, mapError(err))
	}
	return insertedID(result)
}

// GetActivitiesByProject retrieves a project's activities, earliest start date first
func (r *ActivityRepo) GetActivitiesByProject(ctx context.Context, projectID int64) ([]*models.Activity, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT activity_id, project_id, name, description, start_date, end_date, status
		 FROM activities
		 WHERE project_id = ?
		 ORDER BY start_date ASC, activity_id ASC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities for project %d: %w", projectID, mapError(err))
	}
	defer closeRows(rows)

	activities := make([]*models.Activity, 0, 10)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}
	return activities, nil
}

// GetActivityByID retrieves a single activity. A missing activity yields nil, nil.
func (r *ActivityRepo) GetActivityByID(ctx context.Context, id int64) (*models.Activity, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT activity_id, project_id, name, description, start_date, end_date, status
		 FROM activities
		 WHERE activity_id = ?`,
		id,
	)
	activity, err := scanActivity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity %d: %w", id, mapError(err))
	}
	return activity, nil
}

// UpdateActivity overwrites an activity's editable fields and returns the affected row count
func (r *ActivityRepo) UpdateActivity(ctx context.Context, id int64, name, description, startDate, endDate string, status models.Status) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE activities
		 SET name = ?, description = ?, start_date = ?, end_date = ?, status = ?
		 WHERE activity_id = ?`,
		name, toNullString(description), startDate, endDate, string(status), id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update activity %d: %w", id, mapError(err))
	}
	return rowsAffected(result)
}

// DeleteActivity removes a single activity
func (r *ActivityRepo) DeleteActivity(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE activity_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete activity %d: %w", id, mapError(err))
	}
	return rowsAffected(result)
}

// CountActivities counts a project's activities, restricted to status when non-nil
func (r *ActivityRepo) CountActivities(ctx context.Context, projectID int64, status *models.Status) (int, error) {
	var count int
	var err error
	if status == nil {
		err = r.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM activities WHERE project_id = ?`,
			projectID,
		).Scan(&count)
	} else {
		err = r.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM activities WHERE project_id = ? AND status = ?`,
			projectID, string(*status),
		).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count activities for project %d: %w", projectID, mapError(err))
	}
	return count, nil
}

func scanActivity(row rowScanner) (*models.Activity, error) {
	activity := &models.Activity{}
	var description sql.NullString
	var status string
	if err := row.Scan(&activity.ID, &activity.ProjectID, &activity.Name, &description,
		&activity.StartDate, &activity.EndDate, &status); err != nil {
		return nil, err
	}
	activity.Description = NullStringToString(description)
	activity.Status = models.Status(status)
	return activity, nil
}

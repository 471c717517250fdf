package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/avance/internal/models"
)

const projectColumns = `project_id, user_id, name, description, start_date, end_date`

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
}

// InsertProject stores a project for userID and returns its id.
// A missing user wraps ErrForeignKeyViolation and yields FailedInsertID.
func (r *ProjectRepo) InsertProject(ctx context.Context, userID int64, name, description, startDate, endDate string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (user_id, name, description, start_date, end_date) VALUES (?, ?, ?, ?, ?)`,
		userID, name, toNullString(description), startDate, endDate,
	)
	if err != nil {
		return FailedInsertID, fmt.Errorf("failed to insert project '%s': %w", name, mapError(err))
	}
	return insertedID(result)
}

// GetProjectsByUser retrieves a user's projects, most recent start date first
func (r *ProjectRepo) GetProjectsByUser(ctx context.Context, userID int64) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+`
		 FROM projects
		 WHERE user_id = ?
		 ORDER BY start_date DESC, project_id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects for user %d: %w", userID, mapError(err))
	}
	defer closeRows(rows)

	projects := make([]*models.Project, 0, 10)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

// GetProjectByID retrieves a project by id. Returns nil, nil when absent.
func (r *ProjectRepo) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE project_id = ?`,
		id,
	)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, mapError(err))
	}
	return project, nil
}

// UpdateProject overwrites a project's editable fields and returns the affected row count
func (r *ProjectRepo) UpdateProject(ctx context.Context, id int64, name, description, startDate, endDate string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, description = ?, start_date = ?, end_date = ? WHERE project_id = ?`,
		name, toNullString(description), startDate, endDate, id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update project %d: %w", id, mapError(err))
	}
	return rowsAffected(result)
}

// DeleteProject removes a project and all its activities (cascade)
func (r *ProjectRepo) DeleteProject(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE project_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete project %d: %w", id, mapError(err))
	}
	return rowsAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	var description sql.NullString
	if err := row.Scan(&project.ID, &project.UserID, &project.Name, &description, &project.StartDate, &project.EndDate); err != nil {
		return nil, err
	}
	project.Description = NullStringToString(description)
	return project, nil
}

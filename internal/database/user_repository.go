package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/avance/internal/models"
)

// UserRepo handles all user-related database operations.
type UserRepo struct {
	db *sql.DB
}

// InsertUser stores a new user and returns its id.
// On failure the id is FailedInsertID; a taken username wraps ErrDuplicateKey.
func (r *UserRepo) InsertUser(ctx context.Context, username, passwordHash, email string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, email) VALUES (?, ?, ?)`,
		username, passwordHash, email,
	)
	if err != nil {
		return FailedInsertID, fmt.Errorf("failed to insert user '%s': %w", username, mapError(err))
	}
	return insertedID(result)
}

// GetUserCredentials looks up the id and password hash stored for username.
// found is false when no such user exists.
func (r *UserRepo) GetUserCredentials(ctx context.Context, username string) (id int64, passwordHash string, found bool, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT user_id, password_hash FROM users WHERE username = ?`,
		username,
	).Scan(&id, &passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", false, nil
	}
	if err != nil {
		return 0, "", false, fmt.Errorf("failed to get credentials for '%s': %w", username, mapError(err))
	}
	return id, passwordHash, true, nil
}

// GetUserByID retrieves a user by id. Returns nil, nil when absent.
func (r *UserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, username, email FROM users WHERE user_id = ?`,
		id,
	).Scan(&user.ID, &user.Username, &user.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, mapError(err))
	}
	return user, nil
}

// DeleteUser removes a user together with its projects and their activities (cascade)
func (r *UserRepo) DeleteUser(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user %d: %w", id, mapError(err))
	}
	return rowsAffected(result)
}

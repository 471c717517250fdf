package database

import "database/sql"

// Repository provides a unified interface to all data operations.
// It composes the per-entity repositories using struct embedding; all of
// them share the one *sql.DB opened by Open.
type Repository struct {
	*UserRepo
	*ProjectRepo
	*ActivityRepo
}

var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		UserRepo:     &UserRepo{db: db},
		ProjectRepo:  &ProjectRepo{db: db},
		ActivityRepo: &ActivityRepo{db: db},
	}
}

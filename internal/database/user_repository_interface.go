package database

import (
	"context"

	"github.com/thenoetrevino/avance/internal/models"
)

// UserReader defines read operations for users.
type UserReader interface {
	GetUserCredentials(ctx context.Context, username string) (id int64, passwordHash string, found bool, err error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	InsertUser(ctx context.Context, username, passwordHash, email string) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// UserRepository combines all user-related operations.
type UserRepository interface {
	UserReader
	UserWriter
}

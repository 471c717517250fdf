// Package user holds registration, login and account removal
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/thenoetrevino/avance/internal/database"
	"github.com/thenoetrevino/avance/internal/models"
)

// maxPasswordBytes is the longest input bcrypt accepts
const maxPasswordBytes = 72

// Service defines all user-related business operations
type Service interface {
	// Read operations
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// Authentication
	Login(ctx context.Context, username, password string) (bool, error)
	LoginWithID(ctx context.Context, username, password string) (*int64, error)

	// Write operations
	Register(ctx context.Context, req RegisterRequest) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// RegisterRequest encapsulates data for creating a user
type RegisterRequest struct {
	Username string
	Password string
	Email    string
}

// repository defines the data access methods needed by the user service
type repository interface {
	InsertUser(ctx context.Context, username, passwordHash, email string) (int64, error)
	GetUserCredentials(ctx context.Context, username string) (id int64, passwordHash string, found bool, err error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

type service struct {
	repo       repository
	bcryptCost int
}

// NewService creates a new user service. A bcryptCost of zero uses bcrypt.DefaultCost.
func NewService(repo repository, bcryptCost int) Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &service{
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

// Register creates a user and returns its id. On any failure the id is
// database.FailedInsertID; a taken username yields ErrDuplicateUsername.
func (s *service) Register(ctx context.Context, req RegisterRequest) (int64, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := validateRegister(req); err != nil {
		return database.FailedInsertID, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return database.FailedInsertID, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.repo.InsertUser(ctx, req.Username, string(hash), req.Email)
	if err != nil {
		if database.IsDuplicateKey(err) {
			return database.FailedInsertID, fmt.Errorf("%w: %s", ErrDuplicateUsername, req.Username)
		}
		return database.FailedInsertID, fmt.Errorf("failed to register user: %w", err)
	}

	slog.Debug("user registered", "user_id", id, "username", req.Username)
	return id, nil
}

// LoginWithID checks credentials and returns the matching user's id.
// Unknown usernames and wrong passwords return nil without an error.
func (s *service) LoginWithID(ctx context.Context, username, password string) (*int64, error) {
	id, hash, found, err := s.repo.GetUserCredentials(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("failed to check credentials: %w", err)
	}
	if !found {
		return nil, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	return &id, nil
}

// Login reports whether the credentials match a user
func (s *service) Login(ctx context.Context, username, password string) (bool, error) {
	id, err := s.LoginWithID(ctx, username, password)
	if err != nil {
		return false, err
	}
	return id != nil, nil
}

// GetUser retrieves a user by id
func (s *service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %d", ErrUserNotFound, id)
	}
	return user, nil
}

// DeleteUser removes a user, its projects and their activities.
// Returns the number of user rows removed (0 for a stale id).
func (s *service) DeleteUser(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, ErrInvalidUserID
	}

	affected, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}

	slog.Debug("user deleted", "user_id", id, "affected", affected)
	return affected, nil
}

func validateRegister(req RegisterRequest) error {
	if req.Username == "" {
		return ErrEmptyUsername
	}
	if len(req.Username) > 50 {
		return ErrUsernameTooLong
	}
	if req.Password == "" {
		return ErrEmptyPassword
	}
	if len(req.Password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	if !strings.Contains(req.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

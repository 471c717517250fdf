// Package app wires the database and services into one container
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/avance/internal/config"
	"github.com/thenoetrevino/avance/internal/database"
	activityservice "github.com/thenoetrevino/avance/internal/services/activity"
	projectservice "github.com/thenoetrevino/avance/internal/services/project"
	userservice "github.com/thenoetrevino/avance/internal/services/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	ownsDB bool
	logger *slog.Logger

	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	UserService     userservice.Service
	ProjectService  projectservice.Service
	ActivityService activityservice.Service
}

// New creates a new App over an already open database.
// The caller keeps ownership of db; Close leaves it open.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)
	return &App{
		db:              db,
		logger:          cfg.logger,
		repo:            repo,
		UserService:     userservice.NewService(repo, cfg.bcryptCost),
		ProjectService:  projectservice.NewService(repo),
		ActivityService: activityservice.NewService(repo),
	}
}

// Open opens the database named by cfg, migrates it and builds an App that
// owns the connection. Close releases it.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	opts = append([]Option{WithBcryptCost(cfg.Security.BcryptCost)}, opts...)

	openCfg := &appConfig{}
	for _, opt := range opts {
		opt(openCfg)
	}

	open := database.Open
	if openCfg.skipMigrations {
		open = database.Connect
	}

	db, err := open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a := New(db, opts...)
	a.ownsDB = true
	return a, nil
}

// DB returns the underlying connection for schema maintenance
func (a *App) DB() *sql.DB {
	return a.db
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database when the App opened it
func (a *App) Close() error {
	if !a.ownsDB {
		return nil
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", "error", err)
		return err
	}
	return nil
}

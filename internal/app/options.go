package app

import "log/slog"

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger         *slog.Logger
	bcryptCost     int
	skipMigrations bool
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithBcryptCost sets the work factor used when hashing passwords
func WithBcryptCost(cost int) Option {
	return func(cfg *appConfig) {
		cfg.bcryptCost = cost
	}
}

// WithoutMigrations makes Open leave the schema at its current version
func WithoutMigrations() Option {
	return func(cfg *appConfig) {
		cfg.skipMigrations = true
	}
}

// Package cli holds the shared plumbing for avance's cobra commands:
// the application context, output formatting, exit codes and flag helpers.
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/avance/internal/app"
	"github.com/thenoetrevino/avance/internal/cli/styles"
	"github.com/thenoetrevino/avance/internal/config"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const appContextKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
}

// NewCLI loads the config and opens the database it names
func NewCLI(ctx context.Context, opts ...app.Option) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.Open(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}

	styles.Init(cfg.ColorScheme)

	return &CLI{
		App:    application,
		Config: cfg,
	}, nil
}

// WithApp returns a context carrying an already built App.
// GetCLIFromContext prefers it over opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appContextKey, a)
}

// GetCLIFromContext returns a CLI over the App stored by WithApp, or opens a
// new one from the user's config when ctx carries none. opts only apply to
// a newly opened App.
func GetCLIFromContext(ctx context.Context, opts ...app.Option) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appContextKey).(*app.App); ok && a != nil {
			cfg := config.Default()
			styles.Init(cfg.ColorScheme)
			return &CLI{App: a, Config: cfg}, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx, opts...)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

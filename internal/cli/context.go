package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/board/internal/app"
	"github.com/thenoetrevino/board/internal/config"
)

type contextKey string

const (
	appKey     contextKey = "app"
	optionsKey contextKey = "options"
)

// WithApp stores an already-open App in the context. Commands run with such
// a context use it instead of bootstrapping their own, which is how tests
// point commands at an in-memory database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithOptions stores the --config and --env-file selections for NewCLI
func WithOptions(ctx context.Context, opts config.Options) context.Context {
	return context.WithValue(ctx, optionsKey, opts)
}

// OptionsFromContext returns the options stored by WithOptions, if any
func OptionsFromContext(ctx context.Context) config.Options {
	if ctx == nil {
		return config.Options{}
	}
	opts, _ := ctx.Value(optionsKey).(config.Options)
	return opts
}

// GetCLIFromContext returns a CLI over the App in ctx, or bootstraps one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	return NewCLI(ctx)
}

// GetAppForMigrations returns an App whose schema has not been touched, so
// migration commands can report and change it themselves. The returned
// function releases the App.
func GetAppForMigrations(ctx context.Context) (*app.App, func() error, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return a, func() error { return nil }, nil
		}
	}
	a, err := app.Open(ctx, OptionsFromContext(ctx))
	if err != nil {
		return nil, nil, &CommandError{Code: ExitError, Err: fmt.Errorf("failed to initialize: %w", err)}
	}
	return a, a.Close, nil
}

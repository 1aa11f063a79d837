// Package cli holds the shared plumbing of the scriptable commands: the
// application handle, output formatting, exit codes and error mapping.
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/board/internal/app"
	"github.com/thenoetrevino/board/internal/cli/styles"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	owned bool     // true when the CLI opened the App and must close it
}

// NewCLI bootstraps the application (config, logging, database, migrations).
// A failed startup is a general error whatever caused it.
func NewCLI(ctx context.Context) (*CLI, error) {
	application, err := app.Bootstrap(ctx, OptionsFromContext(ctx))
	if err != nil {
		return nil, &CommandError{Code: ExitError, Err: fmt.Errorf("failed to initialize: %w", err)}
	}
	styles.Init(application.Config.ColorScheme)
	return &CLI{App: application, owned: true}, nil
}

// Close releases the application if this CLI opened it
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

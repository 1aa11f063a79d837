// Package app wires configuration, logging, the database and the services
// into one container shared by the console and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/board/internal/config"
	"github.com/thenoetrevino/board/internal/database"
	"github.com/thenoetrevino/board/internal/database/migrate"
	"github.com/thenoetrevino/board/internal/export"
	"github.com/thenoetrevino/board/internal/logging"
	boardservice "github.com/thenoetrevino/board/internal/services/board"
	cardservice "github.com/thenoetrevino/board/internal/services/card"
	columnservice "github.com/thenoetrevino/board/internal/services/column"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Repository layer (direct database access)
	store *database.Store

	Config *config.Config
	logger *slog.Logger

	// Service layer (business logic)
	BoardService  boardservice.Service
	ColumnService columnservice.Service
	CardService   cardservice.Service
	Exporter      *export.Exporter

	closers []io.Closer
}

// New creates a new App with all services initialized.
func New(store *database.Store, opts ...Option) *App {
	cfg := &appConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.config == nil {
		cfg.config = config.Default()
	}

	var cardOpts []cardservice.Option
	if cfg.userFunc != nil {
		cardOpts = append(cardOpts, cardservice.WithUserFunc(cfg.userFunc))
	}

	boards := boardservice.NewService(store)
	cards := cardservice.NewService(store, cardOpts...)

	return &App{
		store:         store,
		Config:        cfg.config,
		logger:        cfg.logger,
		BoardService:  boards,
		ColumnService: columnservice.NewService(store),
		CardService:   cards,
		Exporter:      export.New(boards, cards),
	}
}

// Open loads configuration, starts logging and connects to the database.
// The schema is left untouched; see Bootstrap.
func Open(ctx context.Context, opts config.Options) (*App, error) {
	cfg, err := config.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := logging.Init(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	db, dialect, err := database.Open(ctx, cfg.Database)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	a := New(database.NewStore(db, dialect), WithConfig(cfg), WithLogger(slog.Default()))
	a.closers = append(a.closers, logFile)
	return a, nil
}

// Bootstrap opens the application and applies every pending migration
// before any service is used.
func Bootstrap(ctx context.Context, opts config.Options) (*App, error) {
	a, err := Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	if _, err := a.Migrate(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

// Migrator returns a migration runner bound to the application's database
func (a *App) Migrator() (*migrate.Runner, error) {
	return migrate.New(a.store.DB(), a.store.Dialect())
}

// Migrate applies pending change-sets and returns the ones it ran
func (a *App) Migrate(ctx context.Context) ([]migrate.ChangeSet, error) {
	runner, err := a.Migrator()
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	applied, err := runner.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if len(applied) > 0 {
		a.logger.Info("migrations applied", "count", len(applied))
	}
	return applied, nil
}

// Store returns the underlying store for direct database access.
func (a *App) Store() *database.Store {
	return a.store
}

// Close releases the database and the log file.
func (a *App) Close() error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
	}
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

package app

import (
	"log/slog"

	"github.com/thenoetrevino/board/internal/config"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	config   *config.Config
	logger   *slog.Logger
	userFunc func() string
}

// WithConfig attaches the loaded configuration to the application
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.config = cfg
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

// WithUserFunc overrides how the acting user is resolved when blocking cards
func WithUserFunc(fn func() string) Option {
	return func(c *appConfig) {
		c.userFunc = fn
	}
}

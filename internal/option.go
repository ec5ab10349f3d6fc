package internal

import (
	"log/slog"
	"time"

	"github.com/piotrlaczkowski/NotesAPP/internal/generator"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config    *Config
	logger    *slog.Logger
	generator generator.Generator
	now       func() time.Time
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithLogger overrides the default JSON logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *application) {
		a.logger = logger
	}
}

// WithGenerator injects a pre-built generator, bypassing construction from
// config. Used in tests.
func WithGenerator(gen generator.Generator) Option {
	return func(a *application) {
		a.generator = gen
	}
}

// WithNow overrides the clock used to stamp the review and compute the
// recency window. Used in tests.
func WithNow(now func() time.Time) Option {
	return func(a *application) {
		a.now = now
	}
}

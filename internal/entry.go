// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/piotrlaczkowski/NotesAPP/internal/generator"
	"github.com/piotrlaczkowski/NotesAPP/internal/review"
	"github.com/piotrlaczkowski/NotesAPP/internal/scan"
	"github.com/piotrlaczkowski/NotesAPP/internal/storage"
)

// Run executes one review pass with the given options: scan the notes
// directory, filter to the trailing window, generate a summary, write the
// dated review file.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := app.logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.App.LogLevel,
		}))
	}
	slog.SetDefault(logger)

	nowFn := app.now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	logger.Info("Configuration loaded",
		slog.String("notes_path", cfg.Notes.Path),
		slog.String("output_dir", cfg.Review.OutputDir),
		slog.Int("window_days", cfg.Notes.WindowDays),
		slog.String("provider", cfg.Generator.Provider),
		slog.String("model", cfg.Generator.Model))

	// Build the generator before touching the filesystem: a missing
	// credential skips the whole run.
	gen := app.generator
	if gen == nil {
		var err error
		gen, err = generator.New(cfg.Generator)
		if err != nil {
			return err
		}
	}

	logger.Info("Starting weekly review...")

	results, err := scanNotes(cfg.Notes.Path, logger)
	if err != nil {
		return err
	}

	notes := review.Filter(results, now, cfg.Notes.WindowDays, logger)
	logger.Info("Found notes from the last week", slog.Int("count", len(notes)))

	if len(notes) == 0 {
		logger.Info("No notes to review")
		return nil
	}

	svc := review.NewService(gen, cfg.Review.OutputDir, logger)
	path, err := svc.Run(ctx, notes, now)
	if err != nil {
		return err
	}

	logger.Info("Review saved", slog.String("path", path))
	return nil
}

// scanNotes scans the notes directory. A missing directory is reported and
// treated as zero notes rather than a failure.
func scanNotes(dir string, logger *slog.Logger) ([]scan.Result, error) {
	store, err := storage.NewFS(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("notes directory does not exist", slog.String("path", dir))
			return nil, nil
		}
		return nil, err
	}
	return scan.New(store, logger).Scan()
}

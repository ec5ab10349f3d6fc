package review

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/piotrlaczkowski/NotesAPP/internal/generator"
	"github.com/piotrlaczkowski/NotesAPP/internal/models"
	"github.com/piotrlaczkowski/NotesAPP/internal/storage"
)

// Service generates a review from eligible notes and writes it to the
// output directory.
type Service struct {
	gen       generator.Generator
	outputDir string
	logger    *slog.Logger
}

// NewService creates a review service writing into outputDir.
func NewService(gen generator.Generator, outputDir string, logger *slog.Logger) *Service {
	return &Service{gen: gen, outputDir: outputDir, logger: logger}
}

// Generate produces the review body for the given notes. A generator failure
// is folded into the body text rather than returned: the run still produces
// a review file describing what went wrong.
func (s *Service) Generate(ctx context.Context, notes []models.Note) string {
	if len(notes) == 0 {
		return NoNotesMessage
	}

	prompt := BuildPrompt(notes)
	s.logger.Debug("assembled prompt", slog.Int("length", len(prompt)), slog.Int("notes", len(notes)))

	body, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("review generation failed", slog.String("error", err.Error()))
		return fmt.Sprintf("Error generating review: %v", err)
	}
	return body
}

// Write persists the review under the output directory, creating it (and any
// parents) if needed. A same-day rerun overwrites the previous file. Returns
// the path of the written file.
func (s *Service) Write(r models.Review) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("review: create output dir: %w", err)
	}
	out, err := storage.NewFS(s.outputDir)
	if err != nil {
		return "", err
	}
	if err := out.Write(r.Filename(), []byte(r.Render())); err != nil {
		return "", err
	}
	return filepath.Join(s.outputDir, r.Filename()), nil
}

// Run executes the generate-then-write tail of the pipeline for one set of
// notes, stamping the review with the given time.
func (s *Service) Run(ctx context.Context, notes []models.Note, now time.Time) (string, error) {
	r := models.Review{Date: now, Body: s.Generate(ctx, notes)}
	return s.Write(r)
}

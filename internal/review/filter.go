// Package review implements the weekly review pipeline: recency filtering,
// prompt assembly, summary generation, and output writing.
package review

import (
	"log/slog"
	"strings"
	"time"

	"github.com/piotrlaczkowski/NotesAPP/internal/models"
	"github.com/piotrlaczkowski/NotesAPP/internal/scan"
)

// Filter turns scan results into Notes, retaining only those whose resolved
// date falls within the trailing window (date >= now − windowDays). Results
// that failed to read, and files with no resolvable date, contribute nothing.
// Order follows the directory walk.
func Filter(results []scan.Result, now time.Time, windowDays int, logger *slog.Logger) []models.Note {
	cutoff := now.AddDate(0, 0, -windowDays)

	var notes []models.Note
	for _, r := range results {
		if !r.Ok() {
			// Already logged by the scanner; keep it out of the review.
			continue
		}
		date, ok := ResolveDate(r.Parsed.Frontmatter, r.Name)
		if !ok {
			continue
		}
		if date.Before(cutoff) {
			continue
		}
		notes = append(notes, models.Note{
			Title:    resolveTitle(r.Parsed.Frontmatter, r.Name),
			Category: resolveCategory(r.Parsed.Frontmatter),
			Date:     date,
			Content:  strings.TrimSpace(r.Parsed.Body),
			Path:     r.Path,
		})
	}
	if logger != nil {
		logger.Info("filtered recent notes",
			slog.Int("scanned", len(results)),
			slog.Int("eligible", len(notes)),
			slog.Int("window_days", windowDays))
	}
	return notes
}

// resolveTitle returns the frontmatter "title" if present, otherwise the
// file's name.
func resolveTitle(fm map[string]interface{}, filename string) string {
	if fm != nil {
		if t, ok := fm["title"].(string); ok && t != "" {
			return t
		}
	}
	return filename
}

// resolveCategory returns the frontmatter "category" or the default sentinel.
func resolveCategory(fm map[string]interface{}) string {
	if fm != nil {
		if c, ok := fm["category"].(string); ok && c != "" {
			return c
		}
	}
	return models.DefaultCategory
}

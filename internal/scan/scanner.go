// Package scan enumerates and parses Markdown note files.
package scan

import (
	"log/slog"

	"github.com/piotrlaczkowski/NotesAPP/internal/parser"
	"github.com/piotrlaczkowski/NotesAPP/internal/storage"
)

// Result is the per-file outcome of a scan. A file that could not be read
// carries its failure in Err instead of aborting the scan.
type Result struct {
	Path   string
	Name   string
	Parsed *parser.Result
	Err    error
}

// Ok reports whether the file was read and parsed.
func (r Result) Ok() bool { return r.Err == nil }

// Scanner walks a note store and parses every Markdown file it finds.
type Scanner struct {
	store  storage.Provider
	logger *slog.Logger
}

// New creates a Scanner over the given store.
func New(store storage.Provider, logger *slog.Logger) *Scanner {
	return &Scanner{store: store, logger: logger}
}

// Scan lists every .md file under the store root and returns one Result per
// file, in walk order. Per-file read failures are recorded and logged; the
// scan continues with the remaining files.
func (s *Scanner) Scan() ([]Result, error) {
	files, err := s.store.List("")
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(files))
	for _, f := range files {
		data, err := s.store.Read(f.Path)
		if err != nil {
			s.logger.Warn("skipping unreadable note",
				slog.String("path", f.Path),
				slog.String("error", err.Error()))
			results = append(results, Result{Path: f.Path, Name: f.Name, Err: err})
			continue
		}
		results = append(results, Result{
			Path:   f.Path,
			Name:   f.Name,
			Parsed: parser.Parse(data),
		})
	}
	return results, nil
}

// Package storage defines the note file-system abstraction.
package storage

import "github.com/piotrlaczkowski/NotesAPP/internal/models"

// Provider is the interface for note and review file operations.
type Provider interface {
	// List returns metadata for every .md file under dir (relative to root).
	List(dir string) ([]models.FileInfo, error)
	// Read returns the raw bytes of the file at path (relative to root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to root),
	// overwriting any existing file.
	Write(path string, content []byte) error
}

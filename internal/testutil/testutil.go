// Package testutil provides shared test helpers for setting up note directories.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piotrlaczkowski/NotesAPP/internal/storage"
)

// TestNotesDir creates a temporary notes directory with a storage.Provider.
func TestNotesDir(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// WriteNote writes a raw note file under dir, creating parent directories.
func WriteNote(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// Frontmatter renders a YAML frontmatter header followed by body.
func Frontmatter(body string, fields map[string]string) string {
	out := "---\n"
	for k, v := range fields {
		out += fmt.Sprintf("%s: %s\n", k, v)
	}
	return out + "---\n" + body
}

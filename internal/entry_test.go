package internal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/piotrlaczkowski/NotesAPP/internal/apperr"
	"github.com/piotrlaczkowski/NotesAPP/internal/testutil"
)

type fakeGenerator struct {
	text  string
	calls int
}

func (f *fakeGenerator) Generate(context.Context, string) (string, error) {
	f.calls++
	return f.text, nil
}

func testConfig(t *testing.T) (*Config, string, string) {
	t.Helper()
	notesDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "weekly_reviews")

	cfg := NewDefaultConfig()
	cfg.Notes.Path = notesDir
	cfg.Review.OutputDir = outDir
	cfg.Generator.APIKey = "test-key"
	return cfg, notesDir, outDir
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)
}

func TestRun_FullPipeline(t *testing.T) {
	cfg, notesDir, outDir := testConfig(t)
	testutil.WriteNote(t, notesDir, "2024-06-01-meeting.md", "Discussed roadmap.")
	testutil.WriteNote(t, notesDir, "2023-01-01-ancient.md", "Too old.")

	gen := &fakeGenerator{text: "A good week."}
	err := Run(context.Background(),
		WithConfig(cfg),
		WithLogger(discard()),
		WithGenerator(gen),
		WithNow(fixedNow),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "2024-06-05-Weekly-Review.md"))
	if err != nil {
		t.Fatalf("read review: %v", err)
	}
	if !strings.Contains(string(data), "A good week.") {
		t.Errorf("review = %q", data)
	}
}

func TestRun_NoEligibleNotesWritesNothing(t *testing.T) {
	cfg, notesDir, outDir := testConfig(t)
	testutil.WriteNote(t, notesDir, "undatable.md", "no date here")

	gen := &fakeGenerator{text: "unused"}
	err := Run(context.Background(),
		WithConfig(cfg),
		WithLogger(discard()),
		WithGenerator(gen),
		WithNow(fixedNow),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator calls = %d, want 0", gen.calls)
	}
	if _, err := os.Stat(outDir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output dir should not exist, stat err = %v", err)
	}
}

func TestRun_MissingNotesDirTreatedAsEmpty(t *testing.T) {
	cfg, _, _ := testConfig(t)
	cfg.Notes.Path = filepath.Join(t.TempDir(), "does-not-exist")

	gen := &fakeGenerator{}
	err := Run(context.Background(),
		WithConfig(cfg),
		WithLogger(discard()),
		WithGenerator(gen),
		WithNow(fixedNow),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator calls = %d, want 0", gen.calls)
	}
}

func TestRun_MissingCredentialAbortsBeforeScan(t *testing.T) {
	cfg, notesDir, outDir := testConfig(t)
	cfg.Generator.APIKey = ""
	testutil.WriteNote(t, notesDir, "2024-06-04-note.md", "fresh")

	err := Run(context.Background(),
		WithConfig(cfg),
		WithLogger(discard()),
		WithNow(fixedNow),
	)
	if !errors.Is(err, apperr.ErrMissingAPIKey) {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}
	if _, statErr := os.Stat(outDir); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("no output should be produced without a credential")
	}
}

func TestRun_FrontmatterNotesInSubdirs(t *testing.T) {
	cfg, notesDir, outDir := testConfig(t)
	testutil.WriteNote(t, notesDir, "work/2024-06-04-sync.md",
		testutil.Frontmatter("Shipped the release.", map[string]string{
			"title":    "Release Sync",
			"category": "Work",
			"date":     "2024-06-04",
		}))

	gen := &fakeGenerator{text: "summary"}
	err := Run(context.Background(),
		WithConfig(cfg),
		WithLogger(discard()),
		WithGenerator(gen),
		WithNow(fixedNow),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if _, err := os.Stat(filepath.Join(outDir, "2024-06-05-Weekly-Review.md")); err != nil {
		t.Errorf("review not written: %v", err)
	}
}

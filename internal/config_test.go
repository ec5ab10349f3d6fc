package internal

import (
	"testing"

	"github.com/piotrlaczkowski/NotesAPP/internal/generator"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Notes.WindowDays != 7 {
		t.Errorf("window = %d, want 7", cfg.Notes.WindowDays)
	}
	if cfg.Notes.Path != "notes" {
		t.Errorf("notes path = %q", cfg.Notes.Path)
	}
	if cfg.Review.OutputDir != "weekly_reviews" {
		t.Errorf("output dir = %q", cfg.Review.OutputDir)
	}
	if cfg.Generator.Provider != generator.ProviderGemini {
		t.Errorf("provider = %q", cfg.Generator.Provider)
	}
}

func TestConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"empty notes path", func(c *Config) { c.Notes.Path = "" }, true},
		{"zero window", func(c *Config) { c.Notes.WindowDays = 0 }, true},
		{"negative window", func(c *Config) { c.Notes.WindowDays = -1 }, true},
		{"empty output dir", func(c *Config) { c.Review.OutputDir = "" }, true},
		{"unknown provider", func(c *Config) { c.Generator.Provider = "smoke-signals" }, true},
		{"empty model", func(c *Config) { c.Generator.Model = "" }, true},
		{"openai provider", func(c *Config) {
			c.Generator.Provider = generator.ProviderOpenAI
			c.Generator.Model = "gpt-4o-mini"
		}, false},
		// Absent credential is a runtime skip, not a config error.
		{"no api key", func(c *Config) { c.Generator.APIKey = "" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

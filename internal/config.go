package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/piotrlaczkowski/NotesAPP/internal/generator"
)

// Config represents the application configuration.
type Config struct {
	App       ApplicationConfig `yaml:"app"`
	Notes     NotesConfig       `yaml:"notes"`
	Review    ReviewConfig      `yaml:"review"`
	Generator generator.Config  `yaml:"generator"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Notes.Validate(); err != nil {
		return err
	}
	if err := c.Review.Validate(); err != nil {
		return err
	}
	return validateGenerator(c.Generator)
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// NotesConfig holds the notes directory and the trailing window size.
type NotesConfig struct {
	Path       string `yaml:"path"`
	WindowDays int    `yaml:"window_days"`
}

// Validate validates the notes configuration.
func (c *NotesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
		validation.Field(&c.WindowDays, validation.Required, validation.Min(1)),
	)
}

// ReviewConfig holds the output directory for generated reviews.
type ReviewConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// Validate validates the review configuration.
func (c *ReviewConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.OutputDir, validation.Required),
	)
}

// validateGenerator validates the generator section. The API key is
// deliberately not required here: its absence is a clean-skip condition
// checked at generator construction, not a config error.
func validateGenerator(c generator.Config) error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Provider, validation.Required,
			validation.In(generator.ProviderGemini, generator.ProviderOpenAI)),
		validation.Field(&c.Model, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Notes: NotesConfig{
			Path:       "notes",
			WindowDays: 7,
		},
		Review: ReviewConfig{
			OutputDir: "weekly_reviews",
		},
		Generator: generator.Config{
			Provider: generator.ProviderGemini,
			Model:    "gemini-1.5-flash",
		},
	}
}

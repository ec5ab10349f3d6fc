// Package generator provides clients for external generative-text services.
package generator

import (
	"context"
	"fmt"

	"github.com/piotrlaczkowski/NotesAPP/internal/apperr"
)

// Providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Generator produces text from a prompt via an external service.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds the generator configuration. The credential is passed in
// explicitly; the clients never read the environment themselves.
type Config struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
}

// New builds the configured Generator. A missing credential yields
// apperr.ErrMissingAPIKey so callers can skip the run cleanly.
func New(cfg Config) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("generator %q: %w", cfg.Provider, apperr.ErrMissingAPIKey)
	}
	switch cfg.Provider {
	case ProviderGemini:
		return NewGemini(cfg), nil
	case ProviderOpenAI:
		return NewOpenAI(cfg), nil
	default:
		return nil, fmt.Errorf("generator: unknown provider %q", cfg.Provider)
	}
}

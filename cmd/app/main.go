package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/piotrlaczkowski/NotesAPP/internal"
	"github.com/piotrlaczkowski/NotesAPP/internal/apperr"
	pkgconfig "github.com/piotrlaczkowski/NotesAPP/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()

	configPath := cmd.String("config")
	if _, err := pkgconfig.LoadIfExists(configPath, cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	// Flags override file values when set.
	if cmd.IsSet("notes-dir") {
		cfg.Notes.Path = cmd.String("notes-dir")
	}
	if cmd.IsSet("output-dir") {
		cfg.Review.OutputDir = cmd.String("output-dir")
	}
	if cmd.IsSet("window") {
		cfg.Notes.WindowDays = int(cmd.Int("window"))
	}
	if cmd.IsSet("provider") {
		cfg.Generator.Provider = cmd.String("provider")
	}
	if cmd.IsSet("model") {
		cfg.Generator.Model = cmd.String("model")
	}
	if key := cmd.String("api-key"); key != "" {
		cfg.Generator.APIKey = key
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		if errors.Is(err, apperr.ErrMissingAPIKey) {
			// Clean skip, not a failure.
			slog.Warn("Warning: GEMINI_API_KEY not set. Skipping review generation.")
			return nil
		}
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "weekly-review",
		Usage:  "Summarize recent Markdown notes into a dated weekly review using a generative-text service",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (optional)",
				Value:   "config/config.yaml",
				Sources: cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:  "notes-dir",
				Usage: "Directory scanned recursively for .md notes",
			},
			&cli.StringFlag{
				Name:  "output-dir",
				Usage: "Directory where review files are written",
			},
			&cli.IntFlag{
				Name:  "window",
				Usage: "Trailing window in days",
			},
			&cli.StringFlag{
				Name:  "provider",
				Usage: "Generator provider (gemini or openai)",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "Model identifier passed to the provider",
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "Generator API credential",
				Sources: cli.EnvVars("GEMINI_API_KEY"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

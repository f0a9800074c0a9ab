// Package app wires the loader, extractor, and output stages into one run.
package app

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"vkcases/internal/cases"
	"vkcases/internal/fetch"
	"vkcases/internal/output"
	"vkcases/internal/source"
)

type App struct {
	cfg    Config
	loader *source.Loader
	// stdout is swappable for tests; the CLI mirrors the JSON payload here.
	stdout io.Writer
}

func New(cfg Config) *App {
	return &App{
		cfg: cfg,
		loader: &source.Loader{
			Client: &fetch.Client{
				UserAgent: cfg.UserAgent,
				Timeout:   cfg.Timeout,
			},
			DefaultBaseURL: DefaultBaseURL,
		},
		stdout: os.Stdout,
	}
}

// Run performs one load → extract → emit pass. Loader failures are fatal;
// malformed cards never are.
func (a *App) Run(ctx context.Context) error {
	html, baseURL, err := a.loader.Load(ctx, source.Request{
		Path:    a.cfg.InputPath,
		URL:     a.cfg.URL,
		BaseURL: a.cfg.BaseURL,
	})
	if err != nil {
		return err
	}
	log.Debug().Int("bytes", len(html)).Str("base", baseURL).Msg("listing loaded")

	records, err := cases.Extract(html, baseURL)
	if err != nil {
		return err
	}
	log.Info().Int("cases", len(records)).Str("output", a.cfg.OutputPath).Msg("extraction complete")

	return output.Write(records, a.cfg.OutputPath, a.stdout)
}

package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"vkcases/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// .env is optional; real environment variables always take effect.
	_ = godotenv.Load()

	var (
		inputPath  string
		listingURL string
		baseURL    string
		outputPath string
		userAgent  string
		timeout    time.Duration
		configPath string
		verbose    bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to a saved listing HTML file (skips the network fetch)")
	flag.StringVar(&listingURL, "url", envOr("VKCASES_URL", app.DefaultListingURL), "Case listing page URL")
	flag.StringVar(&baseURL, "base-url", os.Getenv("VKCASES_BASE_URL"), "Base URL override for resolving relative links")
	flag.StringVar(&outputPath, "output", app.DefaultOutputPath, "Path to write the JSON array (also printed to stdout)")
	flag.StringVar(&userAgent, "ua", app.DefaultUserAgent, "User-Agent for the listing fetch")
	flag.DurationVar(&timeout, "timeout", app.DefaultTimeout, "Network timeout, e.g. 10s")
	flag.StringVar(&configPath, "config", os.Getenv("VKCASES_CONFIG"), "Optional YAML config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:  inputPath,
		URL:        listingURL,
		BaseURL:    baseURL,
		OutputPath: outputPath,
		UserAgent:  userAgent,
		Timeout:    timeout,
		Verbose:    verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file unreadable")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.New(cfg).Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

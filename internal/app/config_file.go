package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration schema. Each field maps to
// one CLI flag; explicit flags win over file values. Timeout is a duration
// string ("10s", "1m") since yaml.v3 has no native time.Duration decoding.
type FileConfig struct {
	Input   string `yaml:"input"`
	URL     string `yaml:"url"`
	BaseURL string `yaml:"baseURL"`
	Output  string `yaml:"output"`
	UA      string `yaml:"ua"`
	Timeout string `yaml:"timeout"`
	Verbose bool   `yaml:"verbose"`
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig overlays file values into cfg for fields still at their
// flag defaults. Flags are parsed before this runs, so anything set on the
// command line is preserved.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.URL == "" || cfg.URL == DefaultListingURL) && fc.URL != "" {
		cfg.URL = fc.URL
	}
	if cfg.BaseURL == "" && fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == DefaultOutputPath) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && fc.UA != "" {
		cfg.UserAgent = fc.UA
	}
	if (cfg.Timeout == 0 || cfg.Timeout == DefaultTimeout) && fc.Timeout != "" {
		if d, err := time.ParseDuration(fc.Timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// Package config holds the process configuration, read once from the
// environment at startup and passed down explicitly.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// APIKey is the Gemini credential. Its absence is not a config error;
	// it surfaces when the generation client is constructed, so the page
	// can degrade instead of the process crashing.
	APIKey      string  `env:"GEMINI_API_KEY"`
	TextModel   string  `env:"MENUBOARD_TEXT_MODEL" envDefault:"gemini-2.0-flash"`
	ImageModel  string  `env:"MENUBOARD_IMAGE_MODEL" envDefault:"gemini-2.0-flash-preview-image-generation"`
	Temperature float64 `env:"MENUBOARD_TEMPERATURE" envDefault:"0.7"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

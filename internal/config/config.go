// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Selection modes for the secret word.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// Config holds all application configuration.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	WordsFile   string `env:"WORDS_FILE"` // empty uses the embedded list
	WordLength  int    `env:"WORDLE_WORD_LENGTH" envDefault:"5"`
	MaxAttempts int    `env:"WORDLE_MAX_ATTEMPTS" envDefault:"6"`
	Mode        string `env:"WORDLE_MODE" envDefault:"random"`
	DailySalt   string `env:"WORDLE_DAILY_SALT" envDefault:"wordle"`
	NoColor     string `env:"NO_COLOR"` // any non-empty value disables color
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the board and selection settings are usable.
func (c *Config) Validate() error {
	if c.WordLength < 1 {
		return errors.New("WORDLE_WORD_LENGTH must be at least 1")
	}
	if c.MaxAttempts < 1 {
		return errors.New("WORDLE_MAX_ATTEMPTS must be at least 1")
	}
	switch c.Mode {
	case ModeRandom, ModeDaily:
	default:
		return fmt.Errorf("WORDLE_MODE must be %q or %q, got %q", ModeRandom, ModeDaily, c.Mode)
	}
	return nil
}

// ColorDisabled reports whether NO_COLOR is set to a non-empty value.
func (c *Config) ColorDisabled() bool { return c.NoColor != "" }

// Game returns the board dimensions.
func (c *Config) Game() game.Config {
	return game.Config{WordLength: c.WordLength, MaxAttempts: c.MaxAttempts}
}

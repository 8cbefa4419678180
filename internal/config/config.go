// Package config loads recipekit settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/hammamikhairi/recipekit/internal/display"
	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
	"github.com/hammamikhairi/recipekit/internal/serializer"
)

// Prefix is prepended to every environment variable, e.g.
// RECIPEKIT_LOG_LEVEL.
const Prefix = "RECIPEKIT"

// Config holds all application configuration.
type Config struct {
	LogLevel       string `envconfig:"LOG_LEVEL" default:"off"`
	Decimals       int    `envconfig:"DECIMALS" default:"2"`
	Fractions      bool   `envconfig:"FRACTIONS" default:"true"`
	MaxDenominator int    `envconfig:"MAX_DENOMINATOR" default:"8"`
	UnitSystem     string `envconfig:"UNIT_SYSTEM" default:""`
	OutputFormat   string `envconfig:"OUTPUT_FORMAT" default:"text"`
	Color          bool   `envconfig:"COLOR" default:"true"`
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		LogLevel:       "off",
		Decimals:       2,
		Fractions:      true,
		MaxDenominator: 8,
		UnitSystem:     "",
		OutputFormat:   "text",
		Color:          true,
	}
}

// Load reads the given .env files (".env" when none are named; missing
// files are skipped) and then the RECIPEKIT_* environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration or falls back to Default.
func LoadOrDefault(envFiles ...string) *Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate checks that every setting names something that exists.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Decimals < 0 || c.Decimals > 10 {
		return fmt.Errorf("config: decimals must be between 0 and 10, got %d", c.Decimals)
	}
	switch c.MaxDenominator {
	case 2, 3, 4, 8:
	default:
		return fmt.Errorf("config: max denominator must be 2, 3, 4 or 8, got %d", c.MaxDenominator)
	}
	if _, ok := domain.SystemFromString(c.UnitSystem); !ok {
		return fmt.Errorf("config: unknown unit system %q", c.UnitSystem)
	}
	if _, err := serializer.ParseFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() logger.Level {
	l, _ := logger.ParseLevel(c.LogLevel)
	return l
}

// System returns the configured default unit system.
func (c *Config) System() domain.System {
	s, _ := domain.SystemFromString(c.UnitSystem)
	return s
}

// Format returns the configured output format.
func (c *Config) Format() serializer.Format {
	f, _ := serializer.ParseFormat(c.OutputFormat)
	return f
}

// Precision returns the display rounding settings.
func (c *Config) Precision() display.Precision {
	return display.Precision{
		Decimals:       c.Decimals,
		Fractions:      c.Fractions,
		MaxDenominator: c.MaxDenominator,
	}
}

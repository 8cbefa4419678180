package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipekit/internal/domain"
	"github.com/hammamikhairi/recipekit/internal/logger"
	"github.com/hammamikhairi/recipekit/internal/serializer"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, logger.LevelOff, cfg.Level())
	assert.Equal(t, domain.SystemNone, cfg.System())
	assert.Equal(t, serializer.FormatText, cfg.Format())
	assert.Equal(t, 2, cfg.Precision().Decimals)
	assert.True(t, cfg.Precision().Fractions)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RECIPEKIT_LOG_LEVEL", "debug")
	t.Setenv("RECIPEKIT_DECIMALS", "3")
	t.Setenv("RECIPEKIT_FRACTIONS", "false")
	t.Setenv("RECIPEKIT_UNIT_SYSTEM", "metric")
	t.Setenv("RECIPEKIT_OUTPUT_FORMAT", "json")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, logger.LevelVerbose, cfg.Level())
	assert.Equal(t, 3, cfg.Decimals)
	assert.False(t, cfg.Fractions)
	assert.Equal(t, domain.SystemMetric, cfg.System())
	assert.Equal(t, serializer.FormatJSON, cfg.Format())
}

func TestLoadFromDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("RECIPEKIT_UNIT_SYSTEM=imperial\nRECIPEKIT_MAX_DENOMINATOR=4\n"), 0o600))
	// Setenv registers the cleanup; the values themselves come from the file.
	t.Setenv("RECIPEKIT_UNIT_SYSTEM", "")
	t.Setenv("RECIPEKIT_MAX_DENOMINATOR", "")
	os.Unsetenv("RECIPEKIT_UNIT_SYSTEM")
	os.Unsetenv("RECIPEKIT_MAX_DENOMINATOR")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.SystemImperial, cfg.System())
	assert.Equal(t, 4, cfg.MaxDenominator)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"decimals", func(c *Config) { c.Decimals = -1 }},
		{"denominator", func(c *Config) { c.MaxDenominator = 5 }},
		{"system", func(c *Config) { c.UnitSystem = "martian" }},
		{"format", func(c *Config) { c.OutputFormat = "xml" }},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv("RECIPEKIT_DECIMALS", "many")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	assert.Equal(t, Default(), LoadOrDefault(filepath.Join(t.TempDir(), "missing.env")))
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/urislug/pkg/config"
	"github.com/dmitrymomot/urislug/pkg/slug"
)

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	var cfg slug.Config
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "-", cfg.Space)
	assert.Equal(t, "/", cfg.Separator)
	assert.Equal(t, "1", cfg.Multiplier)
	assert.Equal(t, "UTF-8", cfg.Encoding)
	assert.False(t, cfg.Strict)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SLUG_SPACE", "_")
	t.Setenv("SLUG_MULTIPLIER", "*")
	t.Setenv("SLUG_STRICT_EXHAUSTION", "true")
	t.Cleanup(func() { _ = os.Unsetenv("SLUG_SEPARATOR") })

	var cfg slug.Config
	require.NoError(t, config.Load(&cfg, writeEnvFile(t, "SLUG_SEPARATOR=|\n")))

	assert.Equal(t, "_", cfg.Space)
	assert.Equal(t, "|", cfg.Separator)
	assert.Equal(t, "*", cfg.Multiplier)
	assert.True(t, cfg.Strict)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	t.Setenv("SLUG_MODIFIER", "Live")

	var cfg slug.Config
	require.NoError(t, config.Load(&cfg, writeEnvFile(t, "SLUG_MODIFIER=Demo\n")))
	assert.Equal(t, "Live", cfg.Modifier)
}

func TestLoadPrefixed(t *testing.T) {
	t.Setenv("APP_SLUG_SPACE", "~")

	var cfg slug.Config
	require.NoError(t, config.LoadPrefixed(&cfg, "APP_", writeEnvFile(t, "")))
	assert.Equal(t, "~", cfg.Space)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		var cfg slug.Config
		err := config.Load(&cfg, filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, writeEnvFile(t, ""))
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *slug.Config
		require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, writeEnvFile(t, ""))
	})

	t.Setenv("CONFIG_TEST_REQUIRED", "set")
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, writeEnvFile(t, ""))
		assert.Equal(t, "set", cfg.Value)
	})
}

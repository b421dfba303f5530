package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/config"
)

type testConfig struct {
	Name    string `env:"SITEKIT_TEST_NAME" envDefault:"sitekit"`
	Retries int    `env:"SITEKIT_TEST_RETRIES" envDefault:"3"`
}

type requiredConfig struct {
	URL string `env:"SITEKIT_TEST_REQUIRED_URL,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := config.Load[testConfig]()
		require.NoError(t, err)
		assert.Equal(t, testConfig{Name: "sitekit", Retries: 3}, cfg)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("SITEKIT_TEST_NAME", "custom")
		t.Setenv("SITEKIT_TEST_RETRIES", "5")

		cfg, err := config.Load[testConfig]()
		require.NoError(t, err)
		assert.Equal(t, testConfig{Name: "custom", Retries: 5}, cfg)
	})

	t.Run("reports parse errors", func(t *testing.T) {
		t.Setenv("SITEKIT_TEST_RETRIES", "many")

		_, err := config.Load[testConfig]()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("reports missing required values", func(t *testing.T) {
		_, err := config.Load[requiredConfig]()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() { config.MustLoad[requiredConfig]() })

	t.Setenv("SITEKIT_TEST_REQUIRED_URL", "postgres://localhost")
	assert.Equal(t, "postgres://localhost", config.MustLoad[requiredConfig]().URL)
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads explicit files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("SITEKIT_TEST_FROM_FILE=yes\n"), 0o600))
		t.Setenv("SITEKIT_TEST_FROM_FILE", "")
		require.NoError(t, os.Unsetenv("SITEKIT_TEST_FROM_FILE"))

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "yes", os.Getenv("SITEKIT_TEST_FROM_FILE"))
	})

	t.Run("does not override existing variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("SITEKIT_TEST_KEEP=file\n"), 0o600))
		t.Setenv("SITEKIT_TEST_KEEP", "process")

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "process", os.Getenv("SITEKIT_TEST_KEEP"))
	})

	t.Run("missing explicit file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("missing default file is ignored", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "9090", cfg.GRPCPort)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, uint64(3), cfg.RetryAttempts)
	assert.Equal(t, 5, cfg.PageSize)
	assert.False(t, cfg.AutoOptions)
	assert.Equal(t, "Europe/Moscow", cfg.SchoolLocation.String())
	assert.Equal(t, "ru", cfg.Locale.String())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFrom_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("API_BASE_URL", "https://school.example.com")
	t.Setenv("API_KEY", "secret")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("AUTO_OPTIONS", "true")
	t.Setenv("PAGE_SIZE", "10")
	t.Setenv("SCHOOL_TIMEZONE", "UTC")
	t.Setenv("LOCALE", "en-GB")

	cfg, err := LoadFrom("")
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://school.example.com", cfg.APIBaseURL)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.AutoOptions)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, time.UTC, cfg.SchoolLocation)
	assert.Equal(t, "en-GB", cfg.Locale.String())
}

func TestLoadFrom_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GRPC_PORT=7070\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("GRPC_PORT") })

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.GRPCPort)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Run("relative base url", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "api/courses")
		_, err := LoadFrom("")
		assert.Error(t, err)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		t.Setenv("SCHOOL_TIMEZONE", "Mars/Olympus")
		_, err := LoadFrom("")
		assert.Error(t, err)
	})

	t.Run("malformed locale", func(t *testing.T) {
		t.Setenv("LOCALE", "not a locale!")
		_, err := LoadFrom("")
		assert.Error(t, err)
	})

	t.Run("zero page size", func(t *testing.T) {
		t.Setenv("PAGE_SIZE", "0")
		_, err := LoadFrom("")
		assert.Error(t, err)
	})
}

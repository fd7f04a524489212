package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bradenaw/sortedlist/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sortlist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EmptyFile_UsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(config.New(), writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultDomain, cfg.Domain)
	assert.Empty(t, cfg.Locale)
	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, config.DefaultColor, cfg.Output.Color)

	level, err := cfg.Logging.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoad_FileValues(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
domain: string
locale: cs_CZ.UTF-8
logging:
  level: debug
  format: json
output:
  color: false
`)
	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "string", cfg.Domain)
	assert.Equal(t, "cs_CZ.UTF-8", cfg.Locale)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Output.Color)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SORTLIST_DOMAIN", "string")
	t.Setenv("SORTLIST_LOGGING_LEVEL", "error")

	cfg, err := config.Load(config.New(), writeConfig(t, "domain: int\n"))
	require.NoError(t, err)

	assert.Equal(t, "string", cfg.Domain)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		body string
		err  error
	}{
		{"Domain", "domain: float\n", config.ErrInvalidDomain},
		{"LogLevel", "logging:\n  level: loud\n", config.ErrInvalidLogLevel},
		{"LogFormat", "logging:\n  format: xml\n", config.ErrInvalidLogFormat},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(config.New(), writeConfig(t, tt.body))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

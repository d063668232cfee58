package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvBinary, "")
	t.Setenv(EnvExtension, "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv(EnvBinary, "")
	t.Setenv(EnvExtension, "")
	path := writeConfig(t, `
binary: /opt/bin/just
extension: recipes
reuse_delay: 250ms
sweep_interval: "2s"
once: "true"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin/just", cfg.Binary)
	assert.Equal(t, ".recipes", cfg.Extension)
	assert.Equal(t, 250*time.Millisecond, cfg.ReuseDelay)
	assert.Equal(t, 2*time.Second, cfg.SweepInterval)
	assert.True(t, cfg.Once)
	assert.Equal(t, "tmux", cfg.Tmux)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "bianry: just\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "binary: just\n")
	t.Setenv(EnvBinary, "just-nightly")
	t.Setenv(EnvExtension, ".jf")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "just-nightly", cfg.Binary)
	assert.Equal(t, ".jf", cfg.Extension)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "guesser.yaml", `
base_url: http://game.local:8080
timeout: 3s
fallback_route: /play
strict: true
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "http://game.local:8080", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "/play", cfg.FallbackRoute)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "/", cfg.MenuRoute, "unset keys keep their defaults")
}

func TestLoad_EnvironmentWins(t *testing.T) {
	path := writeFile(t, "guesser.yaml", "base_url: http://from-file\n")
	t.Setenv("GUESSER_BASE_URL", "http://from-env")
	t.Setenv("GUESSER_PERSIST_TIMEOUT", "750ms")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "http://from-env", cfg.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.PersistTimeout)
}

func TestLoad_Dotenv(t *testing.T) {
	dotenv := writeFile(t, ".env", "GUESSER_METRICS_ADDR=:2112\n")
	t.Setenv("GUESSER_METRICS_ADDR", "")
	os.Unsetenv("GUESSER_METRICS_ADDR")

	cfg, err := Load("", dotenv)
	require.NoError(t, err)
	assert.Equal(t, ":2112", cfg.MetricsAddr)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, "guesser.yaml", "timeout: [not a duration]\n")
	_, err := Load(path, "")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = ""
	cfg.Timeout = 0
	cfg.MenuRoute = "menu"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
	assert.Contains(t, err.Error(), "timeout")
	assert.Contains(t, err.Error(), "menu_route")
}

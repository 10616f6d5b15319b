package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "curated", cfg.Engine.CorrelationTable)
	assert.Equal(t, 8*time.Second, cfg.Engine.RequestTimeout)
	assert.Equal(t, "San Francisco, CA", cfg.Engine.DefaultLocation)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Empty(t, cfg.Places.APIKey)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GOOGLE_PLACES_API_KEY", "places-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("ENGINE_REQUEST_TIMEOUT", "3s")
	t.Setenv("CORRELATION_TABLE", "legacy")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("WARM_LOCATIONS", "Chicago,Lagos")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "places-key", cfg.Places.APIKey)
	assert.Equal(t, "openai-key", cfg.OpenAI.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Engine.RequestTimeout)
	assert.Equal(t, "legacy", cfg.Engine.CorrelationTable)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"Chicago", "Lagos"}, cfg.Engine.WarmLocations)
}

func TestLoad_YAMLFileLayer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  heatmap_default_radius: 2500\nqloo:\n  api_key: from-file\n"), 0o600))
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("QLOO_API_KEY", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.Engine.HeatmapDefaultRadius)
	assert.Equal(t, "from-env", cfg.Qloo.APIKey)
}

func TestLoad_RejectsUnknownCorrelationTable(t *testing.T) {
	t.Setenv("CORRELATION_TABLE", "experimental")

	_, err := Load()
	assert.Error(t, err)
}

func TestRedisAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
}

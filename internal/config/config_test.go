package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Engine.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Engine.HealthTimeout)
	assert.Equal(t, "finance", cfg.Engine.Namespace)
	assert.Equal(t, "finance-ai-orchestrator", cfg.Engine.FlowID)
	assert.Equal(t, 5*time.Second, cfg.Inference.Timeout)
	assert.Equal(t, "/app/data", cfg.Data.BasePath)
	assert.NotEmpty(t, cfg.Server.CORSOrigins)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: 9100
engine:
  base_url: http://engine.internal:8080
data:
  base_path: /var/lib/finsight
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "http://engine.internal:8080", cfg.Engine.BaseURL)
	assert.Equal(t, "/var/lib/finsight", cfg.Data.BasePath)
	// untouched defaults survive
	assert.Equal(t, "finance", cfg.Engine.Namespace)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalidPort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: -1\n"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "invalid server port")
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("FINSIGHT_SERVER_PORT", "9200")
	t.Setenv("FINSIGHT_ENGINE_BASE_URL", "http://localhost:18080")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, "http://localhost:18080", cfg.Engine.BaseURL)
}

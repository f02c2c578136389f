package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	cfg, err := load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "groq", cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.Model)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 4096, cfg.LLM.MaxTokens)
	assert.Equal(t, 10, cfg.DatabaseMaxConns)
	assert.Equal(t, time.Hour, cfg.ReportCacheTTL)
	assert.Equal(t, "gsk_test", cfg.LLM.APIKey())
}

func TestWarnings(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("GROQ_API_KEY", "")
	cfg, err := load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL not set")
	assert.Contains(t, err.Error(), "no API key")
	assert.Equal(t, "postgres", cfg.StoreDriver)
}

func TestUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	_, err := load(t.TempDir())
	assert.ErrorContains(t, err, "unknown STORE_DRIVER")
}

func TestFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "listen_addr: \":9090\"\nllm_provider: gemini\ngemini_api_key: from-file\nreport_workers: 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "impactlens.yaml"), []byte(yaml), 0o600))
	t.Setenv("REPORT_WORKERS", "5")

	cfg, err := load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "from-file", cfg.LLM.APIKey())
	assert.Equal(t, 5, cfg.ReportWorkers)
}

func TestZeroTemperature(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("LLM_TEMPERATURE", "0")
	cfg, err := load(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, cfg.LLM.Temperature)
}

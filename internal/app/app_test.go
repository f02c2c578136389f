package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"impactlens/internal/adapters/memstore"
	"impactlens/internal/adapters/sqlite"
	"impactlens/internal/config"
)

func TestOpenBackend(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	b, closeFn, err := OpenBackend(ctx, config.Config{StoreDriver: "memory"}, log)
	require.NoError(t, err)
	assert.IsType(t, &memstore.Store{}, b)
	closeFn()

	path := filepath.Join(t.TempDir(), "impactlens.db")
	b, closeFn, err = OpenBackend(ctx, config.Config{StoreDriver: "sqlite", SQLitePath: path}, log)
	require.NoError(t, err)
	assert.IsType(t, &sqlite.DB{}, b)
	require.NoError(t, b.Put(ctx, "default", "k", []byte(`1`)))
	closeFn()

	_, _, err = OpenBackend(ctx, config.Config{StoreDriver: "postgres"}, log)
	assert.ErrorContains(t, err, "DATABASE_URL")

	_, _, err = OpenBackend(ctx, config.Config{StoreDriver: "mongo"}, log)
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	log, err := Logger(config.Config{Env: "production", LogLevel: "warn"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))

	_, err = Logger(config.Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestNewLLM(t *testing.T) {
	c, err := NewLLM(context.Background(), config.LLMConfig{Provider: "groq", GroqAPIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "allam-2-7b", c.Model())

	c, err = NewLLM(context.Background(), config.LLMConfig{Provider: "gemini", GeminiAPIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", c.Model())

	_, err = NewLLM(context.Background(), config.LLMConfig{Provider: "cohere"})
	assert.Error(t, err)
}

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 9, 30, 12, 0, 0, 0, time.UTC)
	c := NewMemory(time.Minute)
	c.now = func() time.Time { return now }

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "report"))
	v, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "report", v)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryNoTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(0)
	require.NoError(t, c.Set(ctx, "k", "v"))
	c.now = func() time.Time { return time.Now().Add(24 * 365 * time.Hour) }
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)
}

func TestMemorySweepsExpiredWhenFull(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 9, 30, 12, 0, 0, 0, time.UTC)
	c := NewMemory(time.Minute)
	c.max = 3
	c.now = func() time.Time { return now }

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(ctx, k, k))
	}
	now = now.Add(2 * time.Minute)
	require.NoError(t, c.Set(ctx, "d", "d"))
	assert.Equal(t, 1, c.Len(), "expired entries are dropped, not only hidden")

	v, ok := c.Get(ctx, "d")
	require.True(t, ok)
	assert.Equal(t, "d", v)
}

func TestMemoryEvictsOldestWhenFull(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(0)
	c.max = 2

	require.NoError(t, c.Set(ctx, "a", "1"))
	require.NoError(t, c.Set(ctx, "b", "2"))
	require.NoError(t, c.Set(ctx, "a", "3"))
	assert.Equal(t, 2, c.Len(), "overwrite does not evict")

	require.NoError(t, c.Set(ctx, "c", "4"))
	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(ctx, "b")
	assert.False(t, ok, "b is the oldest write")
	v, ok := c.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestNewWithoutAddrUsesMemory(t *testing.T) {
	c, err := New(context.Background(), "", time.Minute)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, c)
}

func TestNewFallsBackWhenRedisDown(t *testing.T) {
	c, err := New(context.Background(), "127.0.0.1:1", time.Minute)
	require.Error(t, err)
	assert.IsType(t, &Memory{}, c)
}

func TestRedis(t *testing.T) {
	addr := os.Getenv("IMPACTLENS_REDIS_ADDR")
	if addr == "" {
		t.Skip("IMPACTLENS_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	c := NewRedis(client, time.Minute)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Set(ctx, "test-key", "cached"))
	v, ok := c.Get(ctx, "test-key")
	require.True(t, ok)
	assert.Equal(t, "cached", v)
}

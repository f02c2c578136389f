// Package cache memoizes generated report text, in process or in Redis.
package cache

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"

	"impactlens/internal/ports"
)

const (
	keyPrefix        = "impactlens:report:"
	maxMemoryEntries = 1024
)

// Memory holds at most max entries. A full cache drops expired entries
// first, then the oldest one.
type Memory struct {
	mu  sync.Mutex
	m   map[string]entry
	ttl time.Duration
	max int
	seq uint64
	now func() time.Time
}

type entry struct {
	v   string
	exp time.Time
	seq uint64
}

// NewMemory returns an in-process cache. ttl <= 0 keeps entries until they
// are evicted for space.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{m: make(map[string]entry), ttl: ttl, max: maxMemoryEntries, now: time.Now}
}

func (c *Memory) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[key]
	if !ok {
		return "", false
	}
	if !e.exp.IsZero() && c.now().After(e.exp) {
		delete(c.m, key)
		return "", false
	}
	return e.v, true
}

func (c *Memory) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	if _, ok := c.m[key]; !ok && len(c.m) >= c.max {
		c.evict(now)
	}
	c.seq++
	e := entry{v: value, seq: c.seq}
	if c.ttl > 0 {
		e.exp = now.Add(c.ttl)
	}
	c.m[key] = e
	return nil
}

func (c *Memory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

// evict must be called with mu held.
func (c *Memory) evict(now time.Time) {
	for k, e := range c.m {
		if !e.exp.IsZero() && now.After(e.exp) {
			delete(c.m, k)
		}
	}
	if len(c.m) < c.max {
		return
	}
	var (
		oldest    string
		oldestSeq uint64 = math.MaxUint64
	)
	for k, e := range c.m {
		if e.seq < oldestSeq {
			oldest, oldestSeq = k, e.seq
		}
	}
	delete(c.m, oldest)
}

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Get treats any Redis failure as a miss; the caller regenerates.
func (c *Redis) Get(ctx context.Context, key string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	v, err := c.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		return "", false
	}
	return v, true
}

func (c *Redis) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, keyPrefix+key, value, c.ttl).Err()
}

func (c *Redis) Close() error { return c.client.Close() }

// New picks Redis when addr is set and answers PING, else memory. The
// returned error explains a Redis fallback and is not fatal.
func New(ctx context.Context, addr string, ttl time.Duration) (ports.ReportCache, error) {
	if addr == "" {
		return NewMemory(ttl), nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return NewMemory(ttl), errors.Join(errors.New("redis unavailable, using memory cache"), err)
	}
	return NewRedis(client, ttl), nil
}

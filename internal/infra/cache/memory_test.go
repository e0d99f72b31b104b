package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func set(t *testing.T, c Cache, key string, value []byte, ttl time.Duration) {
	t.Helper()
	ctx := context.Background()
	generation, err := c.Generation(ctx)
	require.NoError(t, err)
	stored, err := c.SetIfGeneration(ctx, generation, key, value, ttl)
	require.NoError(t, err)
	require.True(t, stored)
}

func TestMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(clock)

	_, ok, err := c.Get(ctx, "rooms:all")
	require.NoError(t, err)
	assert.False(t, ok)

	value := []byte(`[{"id":1}]`)
	set(t, c, "rooms:all", value, 5*time.Minute)
	value[0] = 'x'

	got, ok, err := c.Get(ctx, "rooms:all")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(got))

	got[0] = 'y'
	again, _, _ := c.Get(ctx, "rooms:all")
	assert.Equal(t, `[{"id":1}]`, string(again))
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(clock)

	set(t, c, "tables:3", []byte("[]"), time.Minute)

	clock.Advance(59 * time.Second)
	_, ok, _ := c.Get(ctx, "tables:3")
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok, _ = c.Get(ctx, "tables:3")
	assert.False(t, ok)
	assert.Empty(t, c.entries)
}

func TestMemoryCache_NonPositiveTTLIsNotStored(t *testing.T) {
	c := NewMemoryCache(nil)
	stored, err := c.SetIfGeneration(context.Background(), 0, "k", []byte("v"), 0)
	require.NoError(t, err)
	assert.False(t, stored)
	_, ok, _ := c.Get(context.Background(), "k")
	assert.False(t, ok)
}

func TestMemoryCache_InvalidateAll(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(nil)

	set(t, c, "rooms:all", []byte("a"), time.Minute)
	set(t, c, "tables:all", []byte("b"), time.Minute)
	require.NoError(t, c.InvalidateAll(ctx))

	_, ok, _ := c.Get(ctx, "rooms:all")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "tables:all")
	assert.False(t, ok)
}

func TestMemoryCache_StaleGenerationIsRejected(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(nil)

	before, err := c.Generation(ctx)
	require.NoError(t, err)

	require.NoError(t, c.InvalidateAll(ctx))

	after, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)

	stored, err := c.SetIfGeneration(ctx, before, "rooms:all", []byte("stale"), time.Minute)
	require.NoError(t, err)
	assert.False(t, stored)
	_, ok, _ := c.Get(ctx, "rooms:all")
	assert.False(t, ok)

	stored, err = c.SetIfGeneration(ctx, after, "rooms:all", []byte("fresh"), time.Minute)
	require.NoError(t, err)
	assert.True(t, stored)
	got, ok, _ := c.Get(ctx, "rooms:all")
	require.True(t, ok)
	assert.Equal(t, "fresh", string(got))
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("rooms:%d", i%4)
			for j := 0; j < 100; j++ {
				generation, _ := c.Generation(ctx)
				_, _ = c.SetIfGeneration(ctx, generation, key, []byte("v"), time.Minute)
				_, _, _ = c.Get(ctx, key)
				if j%25 == 0 {
					_ = c.InvalidateAll(ctx)
				}
			}
		}(i)
	}
	wg.Wait()

	c.mu.RLock()
	defer c.mu.RUnlock()
	assert.LessOrEqual(t, len(c.entries), 4)
}

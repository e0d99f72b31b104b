package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisCache(t *testing.T) *RedisCache {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is required for redis integration tests")
	}

	client, err := NewRedisClient(context.Background(), RedisOptions{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client, "test_"+uuid.NewString())
}

func TestRedisCache_Integration(t *testing.T) {
	ctx := context.Background()
	c := setupRedisCache(t)
	t.Cleanup(func() { _ = c.InvalidateAll(context.Background()) })

	_, ok, err := c.Get(ctx, "rooms:all")
	require.NoError(t, err)
	assert.False(t, ok)

	set(t, c, "rooms:all", []byte(`[{"id":1}]`), time.Minute)
	set(t, c, "tables:all", []byte(`[]`), time.Minute)

	got, ok, err := c.Get(ctx, "rooms:all")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(got))

	require.NoError(t, c.InvalidateAll(ctx))
	_, ok, err = c.Get(ctx, "tables:all")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_StaleGenerationIsRejected(t *testing.T) {
	ctx := context.Background()
	c := setupRedisCache(t)
	t.Cleanup(func() { _ = c.InvalidateAll(context.Background()) })

	before, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), before)

	require.NoError(t, c.InvalidateAll(ctx))
	after, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), after)

	stored, err := c.SetIfGeneration(ctx, before, "rooms:all", []byte("stale"), time.Minute)
	require.NoError(t, err)
	assert.False(t, stored)
	_, ok, err := c.Get(ctx, "rooms:all")
	require.NoError(t, err)
	assert.False(t, ok)

	// Ключ поколения переживает сброс
	require.NoError(t, c.InvalidateAll(ctx))
	after, err = c.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), after)
}

func TestRedisCache_Key(t *testing.T) {
	assert.Equal(t, "availability:rooms:all", NewRedisCache(nil, "availability").key("rooms:all"))
	assert.Equal(t, "rooms:all", NewRedisCache(nil, "").key("rooms:all"))
	assert.Equal(t, "availability:__generation", NewRedisCache(nil, "availability").generationKey())
}

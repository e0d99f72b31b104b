package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableAvailability/pkg/metrics"
)

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingCache) Generation(context.Context) (uint64, error) {
	return 0, errors.New("connection refused")
}

func (failingCache) SetIfGeneration(context.Context, uint64, string, []byte, time.Duration) (bool, error) {
	return false, errors.New("connection refused")
}

func (failingCache) InvalidateAll(context.Context) error {
	return errors.New("connection refused")
}

func TestInstrumented_CountsResults(t *testing.T) {
	ctx := context.Background()
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	c := NewInstrumented(NewMemoryCache(nil), m)

	_, _, _ = c.Get(ctx, "rooms:all")
	set(t, c, "rooms:all", []byte("[]"), time.Minute)
	_, _, _ = c.Get(ctx, "rooms:all")
	_, _, _ = c.Get(ctx, "rooms:all")
	require.NoError(t, c.InvalidateAll(ctx))

	stored, err := c.SetIfGeneration(ctx, 0, "rooms:all", []byte("[]"), time.Minute)
	require.NoError(t, err)
	assert.False(t, stored)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheOperations.WithLabelValues("get", "miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheOperations.WithLabelValues("get", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheOperations.WithLabelValues("set", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheOperations.WithLabelValues("invalidate", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheOperations.WithLabelValues("set", "stale")))
}

func TestInstrumented_CountsErrors(t *testing.T) {
	ctx := context.Background()
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())
	c := NewInstrumented(failingCache{}, m)

	_, _, err := c.Get(ctx, "rooms:all")
	assert.Error(t, err)
	_, err = c.Generation(ctx)
	assert.Error(t, err)
	_, err = c.SetIfGeneration(ctx, 0, "rooms:all", nil, time.Minute)
	assert.Error(t, err)
	assert.Error(t, c.InvalidateAll(ctx))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheOperations.WithLabelValues("get", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheOperations.WithLabelValues("generation", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheOperations.WithLabelValues("set", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheOperations.WithLabelValues("invalidate", "error")))
}

func TestInstrumented_NilMetrics(t *testing.T) {
	c := NewInstrumented(NewMemoryCache(nil), nil)
	_, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

package cache

import (
	"context"
	"time"
)

// Результаты операций для метрик
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultOK    = "ok"
	resultError = "error"
	resultStale = "stale"
)

// Instrumented декоратор, считающий попадания, промахи и ошибки кеша
type Instrumented struct {
	inner   Cache
	metrics MetricsRecorder
}

// NewInstrumented оборачивает кеш сбором метрик
func NewInstrumented(inner Cache, metrics MetricsRecorder) *Instrumented {
	return &Instrumented{inner: inner, metrics: metrics}
}

func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, ok, err := c.inner.Get(ctx, key)
	switch {
	case err != nil:
		c.observe("get", resultError)
	case ok:
		c.observe("get", resultHit)
	default:
		c.observe("get", resultMiss)
	}
	return value, ok, err
}

func (c *Instrumented) Generation(ctx context.Context) (uint64, error) {
	generation, err := c.inner.Generation(ctx)
	if err != nil {
		c.observe("generation", resultError)
	}
	return generation, err
}

// SetIfGeneration stale - запись отброшена, потому что кеш сбросили во время загрузки
func (c *Instrumented) SetIfGeneration(ctx context.Context, generation uint64, key string, value []byte, ttl time.Duration) (bool, error) {
	stored, err := c.inner.SetIfGeneration(ctx, generation, key, value, ttl)
	switch {
	case err != nil:
		c.observe("set", resultError)
	case stored:
		c.observe("set", resultOK)
	default:
		c.observe("set", resultStale)
	}
	return stored, err
}

func (c *Instrumented) InvalidateAll(ctx context.Context) error {
	err := c.inner.InvalidateAll(ctx)
	c.observe("invalidate", result(err))
	return err
}

func (c *Instrumented) observe(operation, res string) {
	if c.metrics != nil {
		c.metrics.ObserveCache(operation, res)
	}
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}

package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableAvailability/internal/infra/broker"
	"github.com/m04kA/SMC-TableAvailability/internal/infra/cache"
	invalidateCacheUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/invalidate_cache"
	"github.com/m04kA/SMC-TableAvailability/pkg/logger"
)

func execute(args ...string) (string, error) {
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMigrateList(t *testing.T) {
	out, err := execute("migrate", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "0001_init.sql")
	assert.Contains(t, out, "0002_default_settings.sql")
}

func TestInvalidate_UnknownEventFailsBeforeConnecting(t *testing.T) {
	_, err := execute("invalidate", "menu_changed")
	assert.ErrorIs(t, err, invalidateCacheUC.ErrUnknownEvent)
}

func TestInvalidate_RequiresEvent(t *testing.T) {
	_, err := execute("invalidate")
	assert.Error(t, err)
}

func TestSlots_RequiresDate(t *testing.T) {
	_, err := execute("slots", "--party", "2")
	assert.Error(t, err)
}

func TestInvalidationHandler(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache(nil)
	stored, err := c.SetIfGeneration(ctx, 0, "rooms:all", []byte("[]"), time.Minute)
	require.NoError(t, err)
	require.True(t, stored)

	h := invalidationHandler(invalidateCacheUC.NewUseCase(c, nil, logger.NewNop()))

	// Неизвестное событие подтверждается без сброса
	require.NoError(t, h.HandleInvalidation(ctx, broker.NewInvalidationEvent("menu_changed", "test", time.Now())))
	_, ok, _ := c.Get(ctx, "rooms:all")
	assert.True(t, ok)

	require.NoError(t, h.HandleInvalidation(ctx, broker.NewInvalidationEvent("closure_saved", "test", time.Now())))
	_, ok, _ = c.Get(ctx, "rooms:all")
	assert.False(t, ok)
}

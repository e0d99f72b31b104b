package invalidate_cache

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableAvailability/internal/infra/cache"
	invalidateCache "github.com/m04kA/SMC-TableAvailability/internal/usecase/invalidate_cache"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/internal/availability/invalidate", strings.NewReader(body)))
	return rec
}

func TestHandle_Invalidates(t *testing.T) {
	c := cache.NewMemoryCache(nil)
	stored, err := c.SetIfGeneration(context.Background(), 0, "tables:all", []byte("[]"), time.Minute)
	require.NoError(t, err)
	require.True(t, stored)
	h := NewHandler(invalidateCache.NewUseCase(c, nil, nopLogger{}), nopLogger{})

	rec := post(h, `{"event":"reservation_moved"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body InvalidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, InvalidateResponse{Event: "reservation_moved", Invalidated: true}, body)
	_, ok, _ := c.Get(context.Background(), "tables:all")
	assert.False(t, ok)
}

func TestHandle_BadRequests(t *testing.T) {
	h := NewHandler(invalidateCache.NewUseCase(cache.NewMemoryCache(nil), nil, nopLogger{}), nopLogger{})

	for _, body := range []string{`{}`, `{"event":""}`, `{"event":"menu_changed"}`, `[]`} {
		rec := post(h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

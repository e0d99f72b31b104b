package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger проверка доступности зависимости (БД, Redis)
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingerFunc позволяет использовать функцию как Pinger
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	deps   map[string]Pinger
	logger Logger
}

// NewHandler deps - зависимости по имени, например {"database": db}
func NewHandler(deps map[string]Pinger, logger Logger) *Handler {
	return &Handler{deps: deps, logger: logger}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	checks := make(map[string]string, len(h.deps))
	healthy := true
	for name, dep := range h.deps {
		if err := dep.PingContext(ctx); err != nil {
			h.logger.Warn("GET /health - %s is unavailable: %v", name, err)
			checks[name] = "unavailable"
			healthy = false
			continue
		}
		checks[name] = "ok"
	}

	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	handlers.RespondJSON(w, code, map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}

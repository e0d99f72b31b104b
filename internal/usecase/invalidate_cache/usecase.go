package invalidate_cache

import (
	"context"
	"fmt"
	"strings"
)

// UseCase сброс кеша залов и столов по событию изменения данных
type UseCase struct {
	cache   Cache
	metrics MetricsRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case; cache может быть nil, если кеш выключен
func NewUseCase(cache Cache, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{cache: cache, metrics: metrics, logger: logger}
}

// Execute сбрасывает кеш
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	event := strings.ToLower(strings.TrimSpace(req.Event))

	// 1. Проверяем событие
	if !IsKnownEvent(event) {
		uc.logger.Warn("InvalidateCache: unknown event %q from %s", req.Event, req.Source)
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, req.Event)
	}

	// 2. Кеш выключен - сбрасывать нечего
	if uc.cache == nil {
		return &Response{Event: event, Invalidated: false}, nil
	}

	// 3. Сбрасываем кеш
	if err := uc.cache.InvalidateAll(ctx); err != nil {
		uc.logger.Error("InvalidateCache: failed to invalidate on %s: %v", event, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.ObserveInvalidation(event, req.Source)
	}
	uc.logger.Info("InvalidateCache: cache invalidated on %s from %s", event, req.Source)

	return &Response{Event: event, Invalidated: true}, nil
}

package invalidate_cache

import "context"

// Cache кеш залов и столов
type Cache interface {
	InvalidateAll(ctx context.Context) error
}

// MetricsRecorder фиксирует сбросы кеша
type MetricsRecorder interface {
	ObserveInvalidation(event, source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

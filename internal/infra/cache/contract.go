package cache

import (
	"context"
	"time"
)

// Cache хранилище сериализованных значений с TTL
// Каждый InvalidateAll увеличивает поколение кеша. Запись принимается только для поколения,
// прочитанного до загрузки данных, иначе сброс во время загрузки затирался бы старыми данными
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Generation(ctx context.Context) (uint64, error)
	// SetIfGeneration возвращает false, если с момента чтения generation кеш сбрасывался
	SetIfGeneration(ctx context.Context, generation uint64, key string, value []byte, ttl time.Duration) (bool, error)
	InvalidateAll(ctx context.Context) error
}

// MetricsRecorder фиксирует результаты операций с кешем
type MetricsRecorder interface {
	ObserveCache(operation, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package find_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// RoomRepository интерфейс репозитория залов
type RoomRepository interface {
	GetActive(ctx context.Context, roomID *int64) ([]domain.Room, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetActive(ctx context.Context, roomID *int64) ([]domain.Table, error)
}

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	// GetForRange закрытия, пересекающиеся с [from, to), и все повторяющиеся
	GetForRange(ctx context.Context, from, to time.Time) ([]domain.Closure, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// GetActiveOnDate бронирования на дату со статусами, занимающими места
	GetActiveOnDate(ctx context.Context, date time.Time, roomID *int64) ([]*domain.Reservation, error)
}

// SettingsRepository интерфейс репозитория настроек ресторана
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
}

// Cache кеш залов и столов
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Generation(ctx context.Context) (uint64, error)
	SetIfGeneration(ctx context.Context, generation uint64, key string, value []byte, ttl time.Duration) (bool, error)
}

// MetricsRecorder фиксирует длительность расчета и статусы слотов
type MetricsRecorder interface {
	ObserveAvailability(duration time.Duration, statuses map[string]int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

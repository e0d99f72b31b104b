package find_slots

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// DefaultCacheTTL время жизни залов и столов в кеше
const DefaultCacheTTL = 5 * time.Minute

// DataLoader читает данные для расчета одного дня
// Залы и столы кешируются по фильтру зала, закрытия и брони читаются всегда из хранилища
type DataLoader struct {
	rooms        RoomRepository
	tables       TableRepository
	closures     ClosureRepository
	reservations ReservationRepository
	cache        Cache
	cacheTTL     time.Duration
	logger       Logger
}

// NewDataLoader создает загрузчик; cache может быть nil
func NewDataLoader(
	rooms RoomRepository,
	tables TableRepository,
	closures ClosureRepository,
	reservations ReservationRepository,
	cache Cache,
	cacheTTL time.Duration,
	logger Logger,
) *DataLoader {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &DataLoader{
		rooms:        rooms,
		tables:       tables,
		closures:     closures,
		reservations: reservations,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// LoadRooms активные залы
func (l *DataLoader) LoadRooms(ctx context.Context, roomID *int64) ([]domain.Room, error) {
	return loadCached(ctx, l, "rooms:"+roomScopeKey(roomID), func() ([]domain.Room, error) {
		return l.rooms.GetActive(ctx, roomID)
	})
}

// LoadTables активные столы
func (l *DataLoader) LoadTables(ctx context.Context, roomID *int64) ([]domain.Table, error) {
	return loadCached(ctx, l, "tables:"+roomScopeKey(roomID), func() ([]domain.Table, error) {
		return l.tables.GetActive(ctx, roomID)
	})
}

// LoadClosures закрытия, пересекающиеся с днем, и повторяющиеся закрытия
func (l *DataLoader) LoadClosures(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.Closure, error) {
	return l.closures.GetForRange(ctx, dayStart, dayEnd)
}

// LoadReservations занятость от активных броней на дату
// Брони с некорректным временем пропускаются
func (l *DataLoader) LoadReservations(ctx context.Context, date time.Time, roomID *int64, settings domain.Settings, loc *time.Location) ([]domain.Occupancy, error) {
	reservations, err := l.reservations.GetActiveOnDate(ctx, date, roomID)
	if err != nil {
		return nil, err
	}

	occupancies := make([]domain.Occupancy, 0, len(reservations))
	for _, r := range reservations {
		if !r.IsActiveForAvailability() {
			continue
		}

		start, end, err := r.OccupancyWindow(loc, settings.TurnoverMinutes, settings.BufferMinutes)
		if err != nil {
			l.logger.Warn("FindSlots: skip reservation id=%d with invalid time %q: %v", r.ID, r.Time, err)
			continue
		}

		occupancies = append(occupancies, domain.Occupancy{
			ReservationID: r.ID,
			Party:         r.Party,
			TableID:       r.TableID,
			RoomID:        r.RoomID,
			WindowStart:   start,
			WindowEnd:     end,
		})
	}

	return occupancies, nil
}

// loadCached читает значение из кеша, при промахе из хранилища
// Поколение кеша фиксируется до чтения хранилища: если кеш сбросили во время загрузки, результат не кешируется
// Ошибки кеша не прерывают расчет
func loadCached[T any](ctx context.Context, l *DataLoader, key string, load func() ([]T, error)) ([]T, error) {
	var (
		generation uint64
		cacheable  bool
	)

	if l.cache != nil {
		var err error
		if generation, err = l.cache.Generation(ctx); err != nil {
			l.logger.Warn("FindSlots: cache generation for %s failed: %v", key, err)
		} else {
			cacheable = true
		}

		raw, ok, err := l.cache.Get(ctx, key)
		if err != nil {
			l.logger.Warn("FindSlots: cache get %s failed: %v", key, err)
		}
		if ok {
			var cached []T
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			l.logger.Warn("FindSlots: cache entry %s is corrupted, reloading", key)
		}
	}

	values, err := load()
	if err != nil {
		return nil, err
	}

	if cacheable {
		raw, err := json.Marshal(values)
		if err != nil {
			return values, nil
		}
		stored, err := l.cache.SetIfGeneration(ctx, generation, key, raw, l.cacheTTL)
		if err != nil {
			l.logger.Warn("FindSlots: cache set %s failed: %v", key, err)
		} else if !stored {
			l.logger.Info("FindSlots: cache invalidated while loading %s, result not cached", key)
		}
	}

	return values, nil
}

func roomScopeKey(roomID *int64) string {
	if roomID == nil {
		return "all"
	}
	return strconv.FormatInt(*roomID, 10)
}

package find_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// candidate слот до расчета статуса
type candidate struct {
	Start time.Time
	End   time.Time
}

// dayData загруженные данные дня
type dayData struct {
	Rooms       []domain.Room
	Tables      []domain.Table
	Closures    []domain.Closure
	Occupancies []domain.Occupancy
	Capacities  map[int64]domain.RoomCapacity
}

// generateCandidates слоты по окнам работы с шагом interval
// Слот включается, если start + turnover <= конец окна; всего не больше maxSlots
func generateCandidates(windows []Window, date time.Time, loc *time.Location, interval, turnover, maxSlots int) []candidate {
	y, m, d := date.Date()
	seen := make(map[int]bool)
	result := make([]candidate, 0)

	for _, w := range windows {
		for minute := w.StartMinute; minute+turnover <= w.EndMinute; minute += interval {
			if len(result) >= maxSlots {
				return result
			}
			if seen[minute] {
				continue
			}
			seen[minute] = true

			start := time.Date(y, m, d, 0, minute, 0, 0, loc)
			result = append(result, candidate{
				Start: start,
				End:   start.Add(time.Duration(turnover) * time.Minute),
			})
		}
	}

	return result
}

// evaluateSlot рассчитывает статус одного слота
func evaluateSlot(c candidate, data *dayData, criteria Criteria, settings domain.Settings, loc *time.Location) domain.Slot {
	slot := domain.Slot{
		Start:           c.Start,
		End:             c.End,
		RequestedParty:  criteria.Party,
		Reasons:         make([]string, 0),
		SuggestedTables: []domain.TableSuggestion{},
	}

	// 1. Закрытия
	closures := EvaluateClosures(data.Closures, c.Start, c.End, criteria.RoomID, loc)
	slot.Reasons = append(slot.Reasons, closures.Reasons...)
	if closures.Blocked {
		slot.Status = domain.SlotBlocked
		return slot
	}

	// 2. Свободные столы и пересекающиеся брони
	scopeTables := filterByRoom(data.Tables, criteria.RoomID)
	hasPhysicalTables := len(scopeTables) > 0

	tables := FilterAvailableTables(scopeTables, closures.BlockedTables)
	overlapping := FilterOverlapping(data.Occupancies, c.Start, c.End)
	unassigned, occupied := splitOccupancies(overlapping)
	tables = FilterAvailableTables(tables, occupied)

	// 3. Вместимость
	base := ResolveForScope(data.Capacities, criteria.RoomID, hasPhysicalTables)
	slot.AvailableCapacity = ApplyReductions(base, tables, hasPhysicalTables, unassigned, closures.CapacityPercent)
	ceiling := CapacityCeiling(base, closures.CapacityPercent)

	// 4. Статус
	slot.Status = DetermineStatus(slot.AvailableCapacity, ceiling, criteria.Party)
	if len(overlapping) >= settings.MaxParallelParties {
		slot.Status = domain.SlotFull
		slot.Reasons = append(slot.Reasons, fmt.Sprintf("max parallel bookings reached (%d/%d)", len(overlapping), settings.MaxParallelParties))
	} else if slot.Status == domain.SlotFull {
		slot.Reasons = append(slot.Reasons, fmt.Sprintf("insufficient capacity for party of %d", criteria.Party))
	}

	// 5. Рассадка
	if slot.Status.IsBookable() {
		slot.SuggestedTables = SuggestTables(tables, criteria.Party, settings.MergeStrategy)
	}

	slot.WaitlistAvailable = settings.EnableWaitlist && slot.Status == domain.SlotFull
	return slot
}

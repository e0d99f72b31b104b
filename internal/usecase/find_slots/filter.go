package find_slots

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// FilterAvailableTables столы без заблокированных
func FilterAvailableTables(tables []domain.Table, blocked map[int64]bool) []domain.Table {
	result := make([]domain.Table, 0, len(tables))
	for _, t := range tables {
		if !blocked[t.ID] {
			result = append(result, t)
		}
	}
	return result
}

// FilterOverlapping занятость, пересекающаяся с [slotStart, slotEnd)
// Интервалы, которые только касаются границами, не пересекаются
func FilterOverlapping(occupancies []domain.Occupancy, slotStart, slotEnd time.Time) []domain.Occupancy {
	result := make([]domain.Occupancy, 0)
	for i := range occupancies {
		if occupancies[i].Overlaps(slotStart, slotEnd) {
			result = append(result, occupancies[i])
		}
	}
	return result
}

// filterByRoom столы выбранного зала; без фильтра возвращаются все
func filterByRoom(tables []domain.Table, roomID *int64) []domain.Table {
	if roomID == nil {
		return tables
	}
	result := make([]domain.Table, 0, len(tables))
	for _, t := range tables {
		if t.RoomID == *roomID {
			result = append(result, t)
		}
	}
	return result
}

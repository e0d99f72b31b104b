package find_slots

import "github.com/m04kA/SMC-TableAvailability/internal/domain"

// virtualRoomID зал, который подставляется, если залы и столы не настроены
const virtualRoomID int64 = 0

// AggregateRoomCapacities вместимость по залам
// Вместимость зала не меньше defaultRoomCapacity и не меньше суммы мест его столов
func AggregateRoomCapacities(rooms []domain.Room, tables []domain.Table, defaultRoomCapacity int) map[int64]domain.RoomCapacity {
	result := make(map[int64]domain.RoomCapacity, len(rooms)+1)

	if len(rooms) == 0 && len(tables) == 0 {
		result[virtualRoomID] = domain.RoomCapacity{Capacity: defaultRoomCapacity}
		return result
	}

	for _, r := range rooms {
		result[r.ID] = domain.RoomCapacity{Capacity: max(r.Capacity, defaultRoomCapacity)}
	}

	for _, t := range tables {
		rc, ok := result[t.RoomID]
		if !ok {
			rc = domain.RoomCapacity{Capacity: defaultRoomCapacity}
		}
		rc.TableCapacity += t.Capacity()
		result[t.RoomID] = rc
	}

	for id, rc := range result {
		rc.Capacity = max(rc.Capacity, rc.TableCapacity)
		result[id] = rc
	}

	return result
}

// ResolveForScope базовая вместимость для фильтра по залу
// При наличии столов считается по местам за столами, иначе по вместимости залов
func ResolveForScope(capacities map[int64]domain.RoomCapacity, roomID *int64, hasPhysicalTables bool) int {
	pick := func(rc domain.RoomCapacity) int {
		if hasPhysicalTables {
			return rc.TableCapacity
		}
		return rc.Capacity
	}

	if roomID != nil {
		if rc, ok := capacities[*roomID]; ok {
			return pick(rc)
		}
	}

	total := 0
	for _, rc := range capacities {
		total += pick(rc)
	}
	return total
}

// ApplyReductions эффективная вместимость слота
// (места свободных столов или base, если столов нет) - места броней без стола, затем percent%
func ApplyReductions(baseCapacity int, availableTables []domain.Table, hasPhysicalTables bool, unassignedReserved int, capacityPercent int) int {
	capacity := baseCapacity
	if hasPhysicalTables {
		capacity = 0
		for i := range availableTables {
			capacity += availableTables[i].Capacity()
		}
	}

	capacity = max(capacity-unassignedReserved, 0)
	capacity = capacity * capacityPercent / 100
	return max(capacity, 0)
}

// CapacityCeiling предел вместимости с учетом частичного закрытия, 0 означает, что предел неизвестен
func CapacityCeiling(baseCapacity, capacityPercent int) int {
	return max(baseCapacity*capacityPercent/100, 0)
}

// splitOccupancies места броней без стола и столы, занятые бронями
func splitOccupancies(overlapping []domain.Occupancy) (int, map[int64]bool) {
	unassigned := 0
	occupied := make(map[int64]bool)
	for _, o := range overlapping {
		if o.TableID != nil {
			occupied[*o.TableID] = true
			continue
		}
		unassigned += o.Party
	}
	return unassigned, occupied
}

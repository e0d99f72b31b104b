package find_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// fullCapacityPercent вместимость без частичных закрытий
const fullCapacityPercent = 100

// ClosureEvaluation результат проверки закрытий для одного слота
type ClosureEvaluation struct {
	Blocked         bool
	BlockedTables   map[int64]bool
	CapacityPercent int
	Reasons         []string
}

// EvaluateClosures проверяет закрытия для слота [slotStart, slotEnd)
// Закрытие с capacity override только снижает вместимость и не блокирует слот
// Закрытие стола исключает стол, закрытие зала или ресторана блокирует слот целиком
func EvaluateClosures(closures []domain.Closure, slotStart, slotEnd time.Time, roomID *int64, loc *time.Location) ClosureEvaluation {
	result := ClosureEvaluation{
		BlockedTables:   make(map[int64]bool),
		CapacityPercent: fullCapacityPercent,
		Reasons:         make([]string, 0),
	}

	for i := range closures {
		c := &closures[i]

		if !closureApplies(c, roomID) {
			continue
		}

		start, end, ok := closureOccurrence(c, slotStart, loc)
		if !ok || !start.Before(slotEnd) || !end.After(slotStart) {
			continue
		}

		if c.CapacityOverride != nil {
			percent := c.CapacityOverride.Percent
			if percent < result.CapacityPercent {
				result.CapacityPercent = percent
			}
			result.Reasons = append(result.Reasons, withNote(fmt.Sprintf("capacity reduced to %d%% by closure #%d", percent, c.ID), c.Note))
			continue
		}

		switch c.Scope {
		case domain.ClosureScopeTable:
			result.BlockedTables[*c.TableID] = true
			result.Reasons = append(result.Reasons, withNote(fmt.Sprintf("table %d unavailable (closure #%d)", *c.TableID, c.ID), c.Note))
		case domain.ClosureScopeRoom:
			result.Blocked = true
			result.Reasons = append(result.Reasons, withNote(fmt.Sprintf("room closed (closure #%d)", c.ID), c.Note))
		default:
			result.Blocked = true
			result.Reasons = append(result.Reasons, withNote(fmt.Sprintf("restaurant closed (closure #%d)", c.ID), c.Note))
		}
	}

	return result
}

// closureApplies закрытие чужого зала пропускается; закрытия стола или зала без ссылки некорректны
func closureApplies(c *domain.Closure, roomID *int64) bool {
	switch c.Scope {
	case domain.ClosureScopeTable:
		return c.TableID != nil
	case domain.ClosureScopeRoom:
		if c.RoomID == nil {
			return false
		}
		return roomID == nil || *c.RoomID == *roomID
	default:
		return true
	}
}

// closureOccurrence интервал закрытия, относящийся к дню слота
func closureOccurrence(c *domain.Closure, slotStart time.Time, loc *time.Location) (time.Time, time.Time, bool) {
	if !c.IsRecurring() {
		return c.Start, c.End, true
	}

	day := slotStart.In(loc)
	if !recurrenceMatches(c, day, loc) {
		return time.Time{}, time.Time{}, false
	}

	start, end := overlayTimeOfDay(c, day, loc)
	return start, end, true
}

// recurrenceMatches подходит ли календарный день под правило повторения
func recurrenceMatches(c *domain.Closure, day time.Time, loc *time.Location) bool {
	rule := c.Recurrence
	date := day.Format(domain.DateFormat)

	if rule.From != "" && date < rule.From {
		return false
	}
	if rule.Until != "" && date > rule.Until {
		return false
	}

	anchor := c.Start.In(loc)
	switch rule.Type {
	case domain.RecurrenceDaily:
		return true
	case domain.RecurrenceWeekly:
		if len(rule.Days) == 0 {
			return day.Weekday() == anchor.Weekday()
		}
		return containsInt(rule.Days, domain.ISOWeekday(day.Weekday()))
	case domain.RecurrenceMonthly:
		if len(rule.Days) == 0 {
			return day.Day() == anchor.Day()
		}
		return containsInt(rule.Days, day.Day())
	default:
		return false
	}
}

// overlayTimeOfDay переносит время начала и конца закрытия на дату day
// Если конец не позже начала, закрытие переходит через полночь
func overlayTimeOfDay(c *domain.Closure, day time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := day.Date()
	from := c.Start.In(loc)
	to := c.End.In(loc)

	start := time.Date(y, m, d, from.Hour(), from.Minute(), from.Second(), 0, loc)
	end := time.Date(y, m, d, to.Hour(), to.Minute(), to.Second(), 0, loc)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

func withNote(reason, note string) string {
	if note == "" {
		return reason
	}
	return reason + ": " + note
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

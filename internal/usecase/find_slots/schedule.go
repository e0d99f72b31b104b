package find_slots

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// DefaultScheduleDefinition расписание, если service_hours_definition пуст или не содержит ни одного окна
const DefaultScheduleDefinition = `mon=19:00-23:00
tue=19:00-23:00
wed=19:00-23:00
thu=19:00-23:00
fri=19:00-23:30
sat=12:30-15:00,19:00-23:30
sun=12:30-15:00`

var rangePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})$`)

// Window окно работы в минутах от полуночи, конец не включается
type Window struct {
	StartMinute int
	EndMinute   int
}

// Schedule окна работы по дням недели
type Schedule map[time.Weekday][]Window

// ParseSchedule разбирает определение вида
//
//	mon=19:00-23:00
//	sat=12:30-15:00|19:00-23:30
//
// Некорректные строки и отрезки пропускаются
func ParseSchedule(raw string) Schedule {
	schedule := make(Schedule)

	lines := strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == ';' })
	for _, line := range lines {
		dayPart, rangesPart, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		day, ok := domain.ParseWeekday(dayPart)
		if !ok {
			continue
		}

		segments := strings.FieldsFunc(rangesPart, func(r rune) bool { return r == ',' || r == '|' })
		for _, segment := range segments {
			if w, ok := parseWindow(segment); ok {
				schedule[day] = append(schedule[day], w)
			}
		}
	}

	for day, windows := range schedule {
		sort.Slice(windows, func(i, j int) bool {
			if windows[i].StartMinute != windows[j].StartMinute {
				return windows[i].StartMinute < windows[j].StartMinute
			}
			return windows[i].EndMinute < windows[j].EndMinute
		})
		schedule[day] = windows
	}

	return schedule
}

// IsEmpty true, если ни для одного дня нет окон
func (s Schedule) IsEmpty() bool {
	for _, windows := range s {
		if len(windows) > 0 {
			return false
		}
	}
	return true
}

// ResolveScheduleForDay окна работы на день недели
// Пустое определение или определение без единого корректного окна заменяется расписанием по умолчанию
func ResolveScheduleForDay(day time.Weekday, raw string) []Window {
	schedule := ParseSchedule(raw)
	if schedule.IsEmpty() {
		schedule = ParseSchedule(DefaultScheduleDefinition)
	}

	windows := schedule[day]
	result := make([]Window, len(windows))
	copy(result, windows)
	return result
}

func parseWindow(segment string) (Window, bool) {
	m := rangePattern.FindStringSubmatch(strings.TrimSpace(segment))
	if m == nil {
		return Window{}, false
	}

	start, ok := clockMinutes(m[1], m[2])
	if !ok {
		return Window{}, false
	}
	end, ok := clockMinutes(m[3], m[4])
	if !ok || end <= start {
		return Window{}, false
	}

	return Window{StartMinute: start, EndMinute: end}, true
}

// clockMinutes HH:MM в минуты, 24:00 допустимо как конец дня
func clockMinutes(hh, mm string) (int, bool) {
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m > 59 {
		return 0, false
	}
	if h > 24 || (h == 24 && m != 0) {
		return 0, false
	}
	return h*60 + m, true
}

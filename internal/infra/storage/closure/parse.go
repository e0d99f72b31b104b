package closure

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// recurrenceDTO формат recurrence_json
// days: числа (ISO день недели или число месяца) либо названия дней недели
type recurrenceDTO struct {
	Type  string            `json:"type"`
	Days  []json.RawMessage `json:"days"`
	From  string            `json:"from"`
	Until string            `json:"until"`
}

type capacityOverrideDTO struct {
	Percent *json.Number `json:"percent"`
}

// ParseRecurrence разбирает recurrence_json
// Пустое или поврежденное значение дает nil (закрытие считается разовым)
func ParseRecurrence(raw string) *domain.RecurrenceRule {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}

	var dto recurrenceDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return nil
	}

	rule := &domain.RecurrenceRule{
		Type:  domain.RecurrenceType(strings.ToLower(strings.TrimSpace(dto.Type))),
		From:  normalizeDate(dto.From),
		Until: normalizeDate(dto.Until),
	}

	switch rule.Type {
	case domain.RecurrenceDaily:
	case domain.RecurrenceWeekly:
		rule.Days = parseDays(dto.Days, 1, 7, true)
	case domain.RecurrenceMonthly:
		rule.Days = parseDays(dto.Days, 1, 31, false)
	default:
		return nil
	}

	return rule
}

// ParseCapacityOverride разбирает capacity_override_json, процент ограничивается диапазоном 0..100
func ParseCapacityOverride(raw string) *domain.CapacityOverride {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var dto capacityOverrideDTO
	if err := dec.Decode(&dto); err != nil || dto.Percent == nil {
		return nil
	}

	f, err := dto.Percent.Float64()
	if err != nil {
		return nil
	}

	// Диапазон ограничивается до преобразования в int
	f = min(max(f, 0), 100)
	return &domain.CapacityOverride{Percent: int(f)}
}

func parseDays(values []json.RawMessage, lo, hi int, weekday bool) []int {
	days := make([]int, 0, len(values))
	seen := make(map[int]bool, len(values))

	for _, v := range values {
		day, ok := parseDay(v, weekday)
		if !ok || day < lo || day > hi || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}

	return days
}

func parseDay(v json.RawMessage, weekday bool) (int, bool) {
	var n int
	if err := json.Unmarshal(v, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return 0, false
	}
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if !weekday {
		return 0, false
	}

	wd, ok := domain.ParseWeekday(s)
	if !ok {
		return 0, false
	}
	return domain.ISOWeekday(wd), true
}

// normalizeDate оставляет только корректные даты YYYY-MM-DD
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > len(domain.DateFormat) {
		s = s[:len(domain.DateFormat)]
	}
	if _, err := time.Parse(domain.DateFormat, s); err != nil {
		return ""
	}
	return s
}

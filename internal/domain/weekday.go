package domain

import (
	"strings"
	"time"
)

// weekdayAliases сопоставляет сокращения дней недели разных локалей каноническому дню
// Поиск только по этой таблице, данные локали хоста не используются
var weekdayAliases = map[string]time.Weekday{
	// en
	"mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday, "thu": time.Thursday,
	"fri": time.Friday, "sat": time.Saturday, "sun": time.Sunday,
	// it
	"lun": time.Monday, "mar": time.Tuesday, "mer": time.Wednesday, "gio": time.Thursday,
	"ven": time.Friday, "sab": time.Saturday, "dom": time.Sunday,
	// es
	"mie": time.Wednesday, "jue": time.Thursday, "vie": time.Friday,
	// fr
	"jeu": time.Thursday, "sam": time.Saturday, "dim": time.Sunday,
	// de
	"mo": time.Monday, "di": time.Tuesday, "mi": time.Wednesday, "do": time.Thursday,
	"fr": time.Friday, "sa": time.Saturday, "so": time.Sunday,
}

// ParseWeekday приводит название дня к time.Weekday
// Принимает сокращения (mon, lun, ...), полные названия (monday, lunedì) и регистр не важен
func ParseWeekday(s string) (time.Weekday, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("ì", "i", "é", "e", "á", "a").Replace(key)
	if key == "" {
		return 0, false
	}

	if wd, ok := weekdayAliases[key]; ok {
		return wd, true
	}
	// Полные названия: monday -> mon, mercoledi -> mer, donnerstag -> do
	runes := []rune(key)
	for _, n := range []int{3, 2} {
		if len(runes) > n {
			if wd, ok := weekdayAliases[string(runes[:n])]; ok {
				return wd, true
			}
		}
	}
	return 0, false
}

// ISOWeekday номер дня недели по ISO 8601 (1 = понедельник, 7 = воскресенье)
func ISOWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

package domain

import (
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // зоны должны грузиться и в контейнерах без tzdata
)

// Ключи настроек ресторана в таблице restaurant_settings
const (
	SettingSlotInterval  = "slot_interval_minutes"
	SettingTurnover      = "table_turnover_minutes"
	SettingBuffer        = "buffer_before_minutes"
	SettingMaxParallel   = "max_parallel_parties"
	SettingWaitlist      = "enable_waitlist"
	SettingRoomCapacity  = "default_room_capacity"
	SettingMergeStrategy = "merge_strategy"
	SettingTimezone      = "restaurant_timezone"
	SettingServiceHours  = "service_hours_definition"
)

// Settings настройки ресторана, влияющие на расчет доступности
type Settings struct {
	SlotIntervalMinutes    int
	TurnoverMinutes        int
	BufferMinutes          int
	MaxParallelParties     int
	EnableWaitlist         bool
	DefaultRoomCapacity    int
	MergeStrategy          string
	Timezone               string
	ServiceHoursDefinition string
}

// DefaultSettings настройки по умолчанию
func DefaultSettings() Settings {
	return Settings{
		SlotIntervalMinutes:    DefaultSlotIntervalMinutes,
		TurnoverMinutes:        DefaultTurnoverMinutes,
		BufferMinutes:          DefaultBufferMinutes,
		MaxParallelParties:     DefaultMaxParallelParties,
		EnableWaitlist:         DefaultEnableWaitlist,
		DefaultRoomCapacity:    DefaultRoomCapacity,
		MergeStrategy:          DefaultMergeStrategy,
		Timezone:               DefaultTimezone,
		ServiceHoursDefinition: DefaultServiceHoursDefinition,
	}
}

// SettingsFromMap собирает Settings из пар ключ/значение
// Отсутствующие и нечитаемые значения заменяются значениями по умолчанию
func SettingsFromMap(values map[string]string) Settings {
	s := DefaultSettings()

	s.SlotIntervalMinutes = intSetting(values, SettingSlotInterval, s.SlotIntervalMinutes)
	s.TurnoverMinutes = intSetting(values, SettingTurnover, s.TurnoverMinutes)
	s.BufferMinutes = intSetting(values, SettingBuffer, s.BufferMinutes)
	s.MaxParallelParties = intSetting(values, SettingMaxParallel, s.MaxParallelParties)
	s.EnableWaitlist = boolSetting(values, SettingWaitlist, s.EnableWaitlist)
	s.DefaultRoomCapacity = intSetting(values, SettingRoomCapacity, s.DefaultRoomCapacity)

	if v := strings.TrimSpace(values[SettingMergeStrategy]); v != "" {
		s.MergeStrategy = strings.ToLower(v)
	}
	if v := strings.TrimSpace(values[SettingTimezone]); v != "" {
		s.Timezone = v
	}
	s.ServiceHoursDefinition = values[SettingServiceHours]

	return s.Normalize()
}

// Normalize приводит значения к допустимым диапазонам
// interval >= 5, turnover >= interval, buffer >= 0, max parallel >= 1
func (s Settings) Normalize() Settings {
	if s.SlotIntervalMinutes < MinSlotIntervalMinutes {
		s.SlotIntervalMinutes = MinSlotIntervalMinutes
	}
	if s.SlotIntervalMinutes > MaxSlotIntervalMinutes {
		s.SlotIntervalMinutes = MaxSlotIntervalMinutes
	}
	if s.TurnoverMinutes < s.SlotIntervalMinutes {
		s.TurnoverMinutes = s.SlotIntervalMinutes
	}
	if s.TurnoverMinutes > MaxTurnoverMinutes {
		s.TurnoverMinutes = MaxTurnoverMinutes
	}
	if s.BufferMinutes < 0 {
		s.BufferMinutes = 0
	}
	if s.BufferMinutes > MaxBufferMinutes {
		s.BufferMinutes = MaxBufferMinutes
	}
	if s.MaxParallelParties < MinParallelParties {
		s.MaxParallelParties = MinParallelParties
	}
	if s.DefaultRoomCapacity < 0 {
		s.DefaultRoomCapacity = 0
	}
	switch s.MergeStrategy {
	case MergeStrategySmart, MergeStrategyDisabled:
	default:
		s.MergeStrategy = DefaultMergeStrategy
	}
	return s
}

// Location часовой пояс ресторана
// Некорректное имя зоны заменяется на Europe/Rome, а если и она недоступна - на UTC
func (s Settings) Location() *time.Location {
	if loc, err := time.LoadLocation(s.Timezone); err == nil && s.Timezone != "" {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func intSetting(values map[string]string, key string, def int) int {
	raw := strings.TrimSpace(values[key])
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func boolSetting(values map[string]string, key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(values[key])) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

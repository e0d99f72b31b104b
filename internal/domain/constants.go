package domain

// Значения настроек ресторана по умолчанию
const (
	DefaultSlotIntervalMinutes    = 15
	DefaultTurnoverMinutes        = 120
	DefaultBufferMinutes          = 15
	DefaultMaxParallelParties     = 8
	DefaultEnableWaitlist         = false
	DefaultRoomCapacity           = 40
	DefaultMergeStrategy          = MergeStrategySmart
	DefaultTimezone               = "Europe/Rome"
	DefaultServiceHoursDefinition = ""
)

// Ограничения, защищающие расчет от патологической конфигурации
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 240
	MaxTurnoverMinutes     = 720
	MaxBufferMinutes       = 240
	MinParallelParties     = 1
	MaxSlotsPerDay         = 288 // 24 часа с шагом 5 минут
	MaxPartySize           = 500
)

// Стратегии объединения столов
const (
	MergeStrategySmart    = "smart"
	MergeStrategyDisabled = "none"
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

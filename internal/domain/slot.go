package domain

import "time"

// SlotStatus статус временного слота
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotLimited   SlotStatus = "limited"
	SlotFull      SlotStatus = "full"
	SlotBlocked   SlotStatus = "blocked"
)

// IsBookable true для статусов, допускающих бронирование
func (s SlotStatus) IsBookable() bool {
	return s == SlotAvailable || s == SlotLimited
}

// SuggestionType вид предложения по рассадке
type SuggestionType string

const (
	SuggestionSingle SuggestionType = "single"
	SuggestionMerge  SuggestionType = "merge"
)

// TableSuggestion предложенный стол или комбинация столов
type TableSuggestion struct {
	TableIDs []int64
	Seats    int
	Type     SuggestionType
}

// Slot рассчитанный слот, не хранится в БД
type Slot struct {
	Start             time.Time
	End               time.Time
	Status            SlotStatus
	AvailableCapacity int
	RequestedParty    int
	WaitlistAvailable bool
	Reasons           []string
	SuggestedTables   []TableSuggestion
}

// Label время начала в формате HH:MM
func (s *Slot) Label() string {
	return s.Start.Format(TimeFormat)
}

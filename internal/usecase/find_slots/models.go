package find_slots

import "github.com/m04kA/SMC-TableAvailability/internal/domain"

// Request критерии поиска слотов
type Request struct {
	Date    string // Дата YYYY-MM-DD
	Party   int    // Размер компании
	RoomID  *int64 // Фильтр по залу, <= 0 означает без фильтра
	Meal    string // Ключ приема пищи, передается в ответ как есть
	EventID string // ID события, передается в ответ как есть
}

// Criteria нормализованные критерии
type Criteria struct {
	Date    string
	Party   int
	RoomID  *int64
	Meal    string
	EventID string
}

// Response доступность на день
type Response struct {
	Date     string
	Timezone string
	Criteria Criteria
	Slots    []Slot
	Meta     Meta
}

// Meta сводка по дню
type Meta struct {
	HasAvailability bool
	Reason          string // Почему слотов нет (например, выходной день)
}

// Slot слот в ответе
type Slot struct {
	Start             string // ISO 8601 со смещением
	End               string
	Label             string // HH:MM
	Status            string
	AvailableCapacity int
	RequestedParty    int
	WaitlistAvailable bool
	Reasons           []string
	SuggestedTables   []TableSuggestion
}

// TableSuggestion вариант рассадки
type TableSuggestion struct {
	Tables []int64
	Seats  int
	Type   string
}

// IsBookable true для статусов available и limited
func (s *Slot) IsBookable() bool {
	return domain.SlotStatus(s.Status).IsBookable()
}

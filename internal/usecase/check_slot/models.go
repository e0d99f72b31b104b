package check_slot

import (
	"github.com/m04kA/SMC-TableAvailability/internal/usecase/find_slots"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// Request модель запроса на проверку слота перед созданием брони
type Request struct {
	Date    string           // Дата YYYY-MM-DD
	Time    types.TimeString // Время начала слота, например "19:30"
	Party   int              // Размер компании
	RoomID  *int64           // Фильтр по залу (опционально)
	Meal    string           // Ключ приема пищи (опционально)
	EventID string           // ID события (опционально)
}

// Response модель ответа с проверенным слотом
type Response struct {
	Date     string
	Timezone string
	Slot     find_slots.Slot
}

package check_slot

import (
	findSlotsHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/find_slots"
	checkSlot "github.com/m04kA/SMC-TableAvailability/internal/usecase/check_slot"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// CheckSlotRequest тело запроса проверки слота
type CheckSlotRequest struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string `json:"time" validate:"required"`
	Party   int    `json:"party" validate:"required,gte=1"`
	Room    *int64 `json:"room,omitempty"`
	Meal    string `json:"meal,omitempty" validate:"max=64"`
	EventID string `json:"event_id,omitempty" validate:"max=128"`
}

// CheckSlotResponse ответ с проверенным слотом
type CheckSlotResponse struct {
	Date     string                        `json:"date"`
	Timezone string                        `json:"timezone"`
	Slot     findSlotsHandler.SlotResponse `json:"slot"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckSlotRequest) ToUseCaseRequest() *checkSlot.Request {
	return &checkSlot.Request{
		Date:    r.Date,
		Time:    types.TimeString(r.Time),
		Party:   r.Party,
		RoomID:  r.Room,
		Meal:    r.Meal,
		EventID: r.EventID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlot.Response) *CheckSlotResponse {
	return &CheckSlotResponse{
		Date:     resp.Date,
		Timezone: resp.Timezone,
		Slot:     findSlotsHandler.FromUseCaseSlot(resp.Slot),
	}
}

package check_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TableAvailability/internal/usecase/find_slots"
)

// UseCase проверка «слот все еще доступен» перед созданием брони
// Блокировок не держит: атомарность проверки и вставки обеспечивает хранилище брони
type UseCase struct {
	finder SlotFinder
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(finder SlotFinder, logger Logger) *UseCase {
	return &UseCase{finder: finder, logger: logger}
}

// Execute пересчитывает доступность дня и проверяет запрошенный слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlot: date=%s, time=%s, party=%d", req.Date, req.Time, req.Party)

	// 1. Валидация времени
	slotTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Полный пересчет доступности дня
	day, err := uc.finder.Execute(ctx, &find_slots.Request{
		Date:    req.Date,
		Party:   req.Party,
		RoomID:  req.RoomID,
		Meal:    req.Meal,
		EventID: req.EventID,
	})
	if err != nil {
		if errors.Is(err, find_slots.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CheckSlot: failed to compute availability: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDependencyFailure, err)
	}

	// 3. Поиск слота по времени начала
	var slot *find_slots.Slot
	for i := range day.Slots {
		if day.Slots[i].Label == slotTime.String() {
			slot = &day.Slots[i]
			break
		}
	}
	if slot == nil {
		uc.logger.Warn("CheckSlot: no slot starts at %s on %s", slotTime, req.Date)
		return nil, fmt.Errorf("%w: no slot starts at %s on %s", ErrInvalidTimeSlot, slotTime, req.Date)
	}

	// 4. Проверка статуса
	if !slot.IsBookable() {
		uc.logger.Info("CheckSlot: slot %s on %s is %s", slotTime, req.Date, slot.Status)
		reason := slot.Status
		if len(slot.Reasons) > 0 {
			reason += ": " + strings.Join(slot.Reasons, "; ")
		}
		return nil, fmt.Errorf("%w: %s", ErrSlotNotAvailable, reason)
	}

	return &Response{
		Date:     day.Date,
		Timezone: day.Timezone,
		Slot:     *slot,
	}, nil
}

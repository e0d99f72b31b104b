package check_slot

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TableAvailability/internal/api/handlers"
	checkSlot "github.com/m04kA/SMC-TableAvailability/internal/usecase/check_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные дата, время или размер компании"
	msgInvalidTimeSlot    = "на это время слот не формируется"
	msgSlotNotAvailable   = "выбранный слот недоступен"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckSlotRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrSlotNotAvailable):
			h.logger.Warn("POST /availability/check - Slot not available: date=%s, time=%s, party=%d",
				req.Date, req.Time, req.Party)
			handlers.RespondConflict(w, notAvailableMessage(err))

		case errors.Is(err, checkSlot.ErrInvalidTimeSlot):
			h.logger.Warn("POST /availability/check - Invalid time slot: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, checkSlot.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability/check - Failed to check slot: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/check - Slot is bookable: date=%s, time=%s, status=%s",
		req.Date, req.Time, result.Slot.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// notAvailableMessage добавляет к сообщению статус слота и причины
func notAvailableMessage(err error) string {
	detail := strings.TrimPrefix(err.Error(), checkSlot.ErrSlotNotAvailable.Error())
	detail = strings.TrimPrefix(detail, ": ")
	if detail == "" {
		return msgSlotNotAvailable
	}
	return msgSlotNotAvailable + ": " + detail
}

package find_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableAvailability/internal/api/handlers"
	findSlots "github.com/m04kA/SMC-TableAvailability/internal/usecase/find_slots"
)

const (
	msgMissingDate  = "дата обязательна"
	msgMissingParty = "размер компании обязателен"
	msgInvalidQuery = "некорректный параметр party, ожидается целое число"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParty = "некорректный размер компании"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase FindSlotsUseCase
	logger  Logger
}

func NewHandler(useCase FindSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), party (required), room, meal, event_id
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Get("date") == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	if query.Get("party") == "" {
		h.logger.Warn("GET /availability - Missing party")
		handlers.RespondBadRequest(w, msgMissingParty)
		return
	}

	useCaseReq, err := ToUseCaseRequest(query)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findSlots.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date: date=%s", useCaseReq.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, findSlots.ErrInvalidParty):
			h.logger.Warn("GET /availability - Invalid party: party=%d", useCaseReq.Party)
			handlers.RespondBadRequest(w, msgInvalidParty)

		case errors.Is(err, findSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability - Failed to find slots: date=%s, party=%d, error=%v",
				useCaseReq.Date, useCaseReq.Party, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Slots computed: date=%s, party=%d, slots_count=%d, has_availability=%t",
		result.Date, useCaseReq.Party, len(result.Slots), result.Meta.HasAvailability)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

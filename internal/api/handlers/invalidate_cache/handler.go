package invalidate_cache

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableAvailability/internal/api/handlers"
	invalidateCache "github.com/m04kA/SMC-TableAvailability/internal/usecase/invalidate_cache"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownEvent       = "неизвестное событие"
)

type Handler struct {
	useCase InvalidateCacheUseCase
	logger  Logger
}

func NewHandler(useCase InvalidateCacheUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/internal/availability/invalidate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InvalidateRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /internal/availability/invalidate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, invalidateCache.ErrUnknownEvent):
			h.logger.Warn("POST /internal/availability/invalidate - Unknown event: %s", req.Event)
			handlers.RespondBadRequest(w, msgUnknownEvent)

		default:
			h.logger.Error("POST /internal/availability/invalidate - Failed to invalidate: event=%s, error=%v", req.Event, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

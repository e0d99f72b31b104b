package invalidate_cache

import (
	invalidateCache "github.com/m04kA/SMC-TableAvailability/internal/usecase/invalidate_cache"
)

// InvalidateRequest тело запроса на сброс кеша
type InvalidateRequest struct {
	Event string `json:"event" validate:"required,max=64"`
}

// InvalidateResponse ответ
type InvalidateResponse struct {
	Event       string `json:"event"`
	Invalidated bool   `json:"invalidated"`
}

func (r *InvalidateRequest) ToUseCaseRequest() *invalidateCache.Request {
	return &invalidateCache.Request{Event: r.Event, Source: invalidateCache.SourceHTTP}
}

func FromUseCaseResponse(resp *invalidateCache.Response) *InvalidateResponse {
	return &InvalidateResponse{Event: resp.Event, Invalidated: resp.Invalidated}
}

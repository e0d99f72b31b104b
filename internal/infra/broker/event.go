package broker

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InvalidationEvent сообщение об изменении данных, влияющих на доступность
type InvalidationEvent struct {
	ID         string    `json:"id"`
	Event      string    `json:"event"`
	Source     string    `json:"source,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewInvalidationEvent создает событие с новым идентификатором
func NewInvalidationEvent(event, source string, now time.Time) InvalidationEvent {
	return InvalidationEvent{
		ID:         uuid.NewString(),
		Event:      event,
		Source:     source,
		OccurredAt: now.UTC(),
	}
}

func decodeEvent(body []byte) (InvalidationEvent, error) {
	var ev InvalidationEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return InvalidationEvent{}, fmt.Errorf("%w: decodeEvent - unmarshal: %v", ErrDecode, err)
	}
	if ev.Event == "" {
		return InvalidationEvent{}, fmt.Errorf("%w: decodeEvent - empty event name", ErrDecode)
	}
	return ev, nil
}

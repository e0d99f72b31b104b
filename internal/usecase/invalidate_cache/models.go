package invalidate_cache

// События, после которых кеш доступности должен быть сброшен
const (
	EventReservationCreated       = "reservation_created"
	EventReservationUpdated       = "reservation_updated"
	EventReservationMoved         = "reservation_moved"
	EventReservationStatusChanged = "reservation_status_changed"
	EventClosureSaved             = "closure_saved"
	EventClosureDeleted           = "closure_deleted"
	EventEventBooked              = "event_booked"
	EventRoomConfigChanged        = "room_config_changed"
	EventTableConfigChanged       = "table_config_changed"
)

// Источники события
const (
	SourceHTTP   = "http"
	SourceBroker = "amqp"
	SourceCLI    = "cli"
)

var knownEvents = map[string]bool{
	EventReservationCreated:       true,
	EventReservationUpdated:       true,
	EventReservationMoved:         true,
	EventReservationStatusChanged: true,
	EventClosureSaved:             true,
	EventClosureDeleted:           true,
	EventEventBooked:              true,
	EventRoomConfigChanged:        true,
	EventTableConfigChanged:       true,
}

// IsKnownEvent true для событий из списка выше
func IsKnownEvent(event string) bool {
	return knownEvents[event]
}

// Request модель запроса на сброс кеша
type Request struct {
	Event  string // Имя события
	Source string // Откуда пришло событие (http, amqp, cli)
}

// Response модель ответа
type Response struct {
	Event       string
	Invalidated bool
}

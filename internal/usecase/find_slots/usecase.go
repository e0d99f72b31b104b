package find_slots

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// ReasonClosedDay причина пустого дня
const ReasonClosedDay = "closed on this day"

const tracerName = "github.com/m04kA/SMC-TableAvailability/internal/usecase/find_slots"

// UseCase use case расчета доступности на день
type UseCase struct {
	loader   *DataLoader
	settings SettingsRepository
	metrics  MetricsRecorder
	tracer   trace.Tracer
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	loader *DataLoader,
	settings SettingsRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		loader:   loader,
		settings: settings,
		metrics:  metrics,
		tracer:   otel.Tracer(tracerName),
		logger:   logger,
	}
}

// Execute выполняет расчет доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	started := time.Now()

	ctx, span := uc.tracer.Start(ctx, "FindSlots", trace.WithAttributes(
		attribute.String("availability.date", req.Date),
		attribute.Int("availability.party", req.Party),
	))
	defer span.End()

	// 1. Валидация входных данных (до любых обращений к хранилищу)
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("FindSlots: validation failed: %v", err)
		span.SetStatus(codes.Error, "invalid input")
		return nil, err
	}
	criteria := normalizeCriteria(req, date)

	uc.logger.Info("FindSlots: date=%s, party=%d, room=%s, meal=%q, event=%q",
		criteria.Date, criteria.Party, roomScopeKey(criteria.RoomID), criteria.Meal, criteria.EventID)

	// 2. Настройки ресторана и часовой пояс
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, uc.dependencyFailure(span, "settings", err)
	}
	loc := settings.Location()

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	response := &Response{
		Date:     criteria.Date,
		Timezone: loc.String(),
		Criteria: criteria,
		Slots:    []Slot{},
	}

	// 3. Окна работы на день
	windows := ResolveScheduleForDay(day.Weekday(), settings.ServiceHoursDefinition)
	if len(windows) == 0 {
		uc.logger.Info("FindSlots: restaurant is closed on %s", criteria.Date)
		response.Meta.Reason = ReasonClosedDay
		uc.observe(started, response.Slots)
		return response, nil
	}

	// 4. Данные дня
	data, err := uc.loadDay(ctx, day, criteria.RoomID, settings, loc)
	if err != nil {
		return nil, uc.dependencyFailure(span, "load data", err)
	}

	// 5. Расчет слотов
	candidates := generateCandidates(windows, day, loc, settings.SlotIntervalMinutes, settings.TurnoverMinutes, domain.MaxSlotsPerDay)
	for _, c := range candidates {
		slot := evaluateSlot(c, data, criteria, settings, loc)
		payload := BuildSlotPayload(slot, settings.EnableWaitlist)
		if payload.IsBookable() {
			response.Meta.HasAvailability = true
		}
		response.Slots = append(response.Slots, payload)
	}
	if len(response.Slots) == 0 {
		response.Meta.Reason = ReasonClosedDay
	}

	span.SetAttributes(
		attribute.Int("availability.slots", len(response.Slots)),
		attribute.Bool("availability.has_availability", response.Meta.HasAvailability),
	)
	uc.observe(started, response.Slots)

	uc.logger.Info("FindSlots: computed %d slots for date=%s, party=%d, has_availability=%t",
		len(response.Slots), criteria.Date, criteria.Party, response.Meta.HasAvailability)

	return response, nil
}

func (uc *UseCase) loadDay(ctx context.Context, day time.Time, roomID *int64, settings domain.Settings, loc *time.Location) (*dayData, error) {
	rooms, err := uc.loader.LoadRooms(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("rooms: %w", err)
	}

	tables, err := uc.loader.LoadTables(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("tables: %w", err)
	}

	closures, err := uc.loader.LoadClosures(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("closures: %w", err)
	}

	occupancies, err := uc.loader.LoadReservations(ctx, day, roomID, settings, loc)
	if err != nil {
		return nil, fmt.Errorf("reservations: %w", err)
	}

	return &dayData{
		Rooms:       rooms,
		Tables:      tables,
		Closures:    closures,
		Occupancies: occupancies,
		Capacities:  AggregateRoomCapacities(rooms, tables, settings.DefaultRoomCapacity),
	}, nil
}

func (uc *UseCase) dependencyFailure(span trace.Span, step string, err error) error {
	uc.logger.Error("FindSlots: failed to %s: %v", step, err)
	span.RecordError(err)
	span.SetStatus(codes.Error, step)
	return fmt.Errorf("%w: %s: %v", ErrDependencyFailure, step, err)
}

func (uc *UseCase) observe(started time.Time, slots []Slot) {
	if uc.metrics == nil {
		return
	}
	statuses := make(map[string]int)
	for i := range slots {
		statuses[slots[i].Status]++
	}
	uc.metrics.ObserveAvailability(time.Since(started), statuses)
}

package find_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRooms struct {
	rooms []domain.Room
	err   error
	calls int
	// afterRead вызывается после чтения, до возврата результата
	afterRead func()
}

func (f *fakeRooms) GetActive(_ context.Context, roomID *int64) ([]domain.Room, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := make([]domain.Room, 0)
	for _, r := range f.rooms {
		if roomID == nil || r.ID == *roomID {
			result = append(result, r)
		}
	}
	if f.afterRead != nil {
		f.afterRead()
	}
	return result, nil
}

type fakeTables struct {
	tables []domain.Table
	err    error
	calls  int
}

func (f *fakeTables) GetActive(_ context.Context, roomID *int64) ([]domain.Table, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := make([]domain.Table, 0)
	for _, t := range f.tables {
		if roomID == nil || t.RoomID == *roomID {
			result = append(result, t)
		}
	}
	return result, nil
}

type fakeClosures struct {
	closures []domain.Closure
	err      error
}

func (f *fakeClosures) GetForRange(context.Context, time.Time, time.Time) ([]domain.Closure, error) {
	return f.closures, f.err
}

type fakeReservations struct {
	reservations []*domain.Reservation
	err          error
}

func (f *fakeReservations) GetActiveOnDate(context.Context, time.Time, *int64) ([]*domain.Reservation, error) {
	return f.reservations, f.err
}

type fakeSettings struct {
	settings domain.Settings
	err      error
	calls    int
}

func (f *fakeSettings) Get(context.Context) (domain.Settings, error) {
	f.calls++
	return f.settings, f.err
}

type fixture struct {
	rooms        *fakeRooms
	tables       *fakeTables
	closures     *fakeClosures
	reservations *fakeReservations
	settings     *fakeSettings
}

// newFixture зал на 20 мест, столы 1 и 2 на двоих (группа A), стол 3 на 2-4 места,
// понедельник 19:00-21:00, шаг 30 минут, оборот 60 минут без буфера
func newFixture() *fixture {
	settings := domain.DefaultSettings()
	settings.ServiceHoursDefinition = "mon=19:00-21:00"
	settings.SlotIntervalMinutes = 30
	settings.TurnoverMinutes = 60
	settings.BufferMinutes = 0
	settings.DefaultRoomCapacity = 0

	return &fixture{
		rooms: &fakeRooms{rooms: []domain.Room{{ID: 1, Name: "Sala", Capacity: 20, IsActive: true}}},
		tables: &fakeTables{tables: []domain.Table{
			{ID: 1, RoomID: 1, Code: "T1", SeatsMin: 1, SeatsStd: 2, SeatsMax: 2, JoinGroup: "A", IsActive: true},
			{ID: 2, RoomID: 1, Code: "T2", SeatsMin: 1, SeatsStd: 2, SeatsMax: 2, JoinGroup: "A", IsActive: true},
			{ID: 3, RoomID: 1, Code: "T3", SeatsMin: 2, SeatsStd: 4, SeatsMax: 4, IsActive: true},
		}},
		closures:     &fakeClosures{},
		reservations: &fakeReservations{},
		settings:     &fakeSettings{settings: settings.Normalize()},
	}
}

func (f *fixture) useCase(cache Cache) *UseCase {
	loader := NewDataLoader(f.rooms, f.tables, f.closures, f.reservations, cache, time.Minute, nopLogger{})
	return NewUseCase(loader, f.settings, nil, nopLogger{})
}

func rome() *time.Location {
	loc, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		panic(err)
	}
	return loc
}

func at(date string, clock string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, rome())
	if err != nil {
		panic(err)
	}
	return t
}

func reservation(id int64, party int, tableID *int64, clock string) *domain.Reservation {
	return &domain.Reservation{
		ID:      id,
		Party:   party,
		TableID: tableID,
		Date:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:    types.TimeString(clock),
		Status:  domain.StatusConfirmed,
	}
}

func slotByLabel(resp *Response, label string) *Slot {
	for i := range resp.Slots {
		if resp.Slots[i].Label == label {
			return &resp.Slots[i]
		}
	}
	return nil
}

func suggestedIDs(slot *Slot) [][]int64 {
	result := make([][]int64, 0, len(slot.SuggestedTables))
	for _, s := range slot.SuggestedTables {
		result = append(result, s.Tables)
	}
	return result
}

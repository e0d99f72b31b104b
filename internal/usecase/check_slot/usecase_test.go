package check_slot

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableAvailability/internal/usecase/find_slots"
	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeFinder struct {
	resp *find_slots.Response
	err  error
	got  *find_slots.Request
}

func (f *fakeFinder) Execute(_ context.Context, req *find_slots.Request) (*find_slots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func day() *find_slots.Response {
	return &find_slots.Response{
		Date:     "2025-03-10",
		Timezone: "Europe/Rome",
		Slots: []find_slots.Slot{
			{Label: "19:00", Status: "available", AvailableCapacity: 8},
			{Label: "19:30", Status: "limited", AvailableCapacity: 2},
			{Label: "20:00", Status: "full", Reasons: []string{"max parallel bookings reached (2/2)"}},
			{Label: "20:30", Status: "blocked", Reasons: []string{"restaurant closed (closure #1)"}},
		},
	}
}

func TestCheckSlot_Bookable(t *testing.T) {
	finder := &fakeFinder{resp: day()}
	uc := NewUseCase(finder, nopLogger{})
	room := int64(3)

	for _, tm := range []string{"19:00", "19:30", "19:30:00"} {
		resp, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10", Time: types.TimeString(tm), Party: 2, RoomID: &room, EventID: "7"})
		require.NoError(t, err, tm)
		assert.Equal(t, "Europe/Rome", resp.Timezone)
		assert.True(t, resp.Slot.IsBookable())
	}

	require.NotNil(t, finder.got)
	assert.Equal(t, &room, finder.got.RoomID)
	assert.Equal(t, "7", finder.got.EventID)
}

func TestCheckSlot_NotBookable(t *testing.T) {
	uc := NewUseCase(&fakeFinder{resp: day()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10", Time: "20:00", Party: 2})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Contains(t, err.Error(), "max parallel bookings reached (2/2)")

	_, err = uc.Execute(context.Background(), &Request{Date: "2025-03-10", Time: "20:30", Party: 2})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Contains(t, err.Error(), "blocked")
}

func TestCheckSlot_UnknownTime(t *testing.T) {
	uc := NewUseCase(&fakeFinder{resp: day()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10", Time: "19:15", Party: 2})
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestCheckSlot_InvalidInput(t *testing.T) {
	finder := &fakeFinder{resp: day()}
	uc := NewUseCase(finder, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10", Party: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: "2025-03-10", Time: "7pm", Party: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, finder.got)

	finder.err = fmt.Errorf("%w: %w: party must be positive", find_slots.ErrInvalidInput, find_slots.ErrInvalidParty)
	_, err = uc.Execute(context.Background(), &Request{Date: "2025-03-10", Time: "19:00", Party: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckSlot_DependencyFailure(t *testing.T) {
	finder := &fakeFinder{err: fmt.Errorf("%w: rooms: %v", find_slots.ErrDependencyFailure, errors.New("timeout"))}
	uc := NewUseCase(finder, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10", Time: "19:00", Party: 2})
	assert.ErrorIs(t, err, ErrDependencyFailure)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

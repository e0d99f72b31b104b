package domain

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending        ReservationStatus = "pending"
	StatusConfirmed      ReservationStatus = "confirmed"
	StatusSeated         ReservationStatus = "seated"
	StatusPendingPayment ReservationStatus = "pending_payment"
	StatusVisited        ReservationStatus = "visited"
	StatusCancelled      ReservationStatus = "cancelled"
	StatusNoShow         ReservationStatus = "no_show"
	StatusWaitlist       ReservationStatus = "waitlist"
)

// ActiveStatuses statuses that occupy capacity.
// Used by the reservation repository to filter rows for availability
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusSeated,
	StatusPendingPayment,
}

// Reservation represents a stored reservation, as far as availability is concerned
type Reservation struct {
	ID      int64
	Party   int
	TableID *int64
	RoomID  *int64
	Date    time.Time
	Time    types.TimeString
	Status  ReservationStatus
}

// IsActiveForAvailability returns true if the reservation occupies capacity
func (r *Reservation) IsActiveForAvailability() bool {
	for _, s := range ActiveStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// OccupancyWindow returns [start - buffer, start + turnover + buffer) in loc
func (r *Reservation) OccupancyWindow(loc *time.Location, turnoverMinutes, bufferMinutes int) (time.Time, time.Time, error) {
	minutes, err := r.Time.Minutes()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	y, m, d := r.Date.Date()
	start := time.Date(y, m, d, 0, minutes, 0, 0, loc)

	windowStart := start.Add(-time.Duration(bufferMinutes) * time.Minute)
	windowEnd := start.Add(time.Duration(turnoverMinutes+bufferMinutes) * time.Minute)
	return windowStart, windowEnd, nil
}

// Occupancy reservation reduced to what the engine needs: party and occupied window
type Occupancy struct {
	ReservationID int64
	Party         int
	TableID       *int64
	RoomID        *int64
	WindowStart   time.Time
	WindowEnd     time.Time
}

// Overlaps half-open interval test: [WindowStart, WindowEnd) ∩ [start, end) != ∅
func (o *Occupancy) Overlaps(start, end time.Time) bool {
	return o.WindowStart.Before(end) && o.WindowEnd.After(start)
}

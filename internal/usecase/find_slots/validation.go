package find_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// validateRequest проверяет дату и размер компании до обращения к хранилищу
func validateRequest(req *Request) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w: %q must be YYYY-MM-DD", ErrInvalidInput, ErrInvalidDate, req.Date)
	}

	if req.Party <= 0 {
		return time.Time{}, fmt.Errorf("%w: %w: party must be positive, got %d", ErrInvalidInput, ErrInvalidParty, req.Party)
	}

	if req.Party > domain.MaxPartySize {
		return time.Time{}, fmt.Errorf("%w: %w: party must not exceed %d", ErrInvalidInput, ErrInvalidParty, domain.MaxPartySize)
	}

	return date, nil
}

// normalizeCriteria room <= 0 означает отсутствие фильтра
func normalizeCriteria(req *Request, date time.Time) Criteria {
	var roomID *int64
	if req.RoomID != nil && *req.RoomID > 0 {
		id := *req.RoomID
		roomID = &id
	}

	return Criteria{
		Date:    date.Format(domain.DateFormat),
		Party:   req.Party,
		RoomID:  roomID,
		Meal:    strings.TrimSpace(req.Meal),
		EventID: strings.TrimSpace(req.EventID),
	}
}

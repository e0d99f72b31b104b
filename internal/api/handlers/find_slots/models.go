package find_slots

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	findSlots "github.com/m04kA/SMC-TableAvailability/internal/usecase/find_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date     string           `json:"date"`
	Timezone string           `json:"timezone"`
	Criteria CriteriaResponse `json:"criteria"`
	Slots    []SlotResponse   `json:"slots"`
	Meta     MetaResponse     `json:"meta"`
}

// CriteriaResponse нормализованные критерии поиска
type CriteriaResponse struct {
	Date    string `json:"date"`
	Party   int    `json:"party"`
	Room    *int64 `json:"room"`
	Meal    string `json:"meal,omitempty"`
	EventID string `json:"event_id,omitempty"`
}

type MetaResponse struct {
	HasAvailability bool   `json:"has_availability"`
	Reason          string `json:"reason,omitempty"`
}

// SlotResponse модель слота
type SlotResponse struct {
	Start             string                    `json:"start"`
	End               string                    `json:"end"`
	Label             string                    `json:"label"`
	Status            string                    `json:"status"`
	AvailableCapacity int                       `json:"available_capacity"`
	RequestedParty    int                       `json:"requested_party"`
	WaitlistAvailable bool                      `json:"waitlist_available"`
	Reasons           []string                  `json:"reasons"`
	SuggestedTables   []TableSuggestionResponse `json:"suggested_tables"`
}

type TableSuggestionResponse struct {
	Tables []int64 `json:"tables"`
	Seats  int     `json:"seats"`
	Type   string  `json:"type"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findSlots.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = FromUseCaseSlot(slot)
	}

	return &AvailabilityResponse{
		Date:     resp.Date,
		Timezone: resp.Timezone,
		Criteria: CriteriaResponse{
			Date:    resp.Criteria.Date,
			Party:   resp.Criteria.Party,
			Room:    resp.Criteria.RoomID,
			Meal:    resp.Criteria.Meal,
			EventID: resp.Criteria.EventID,
		},
		Slots: slots,
		Meta: MetaResponse{
			HasAvailability: resp.Meta.HasAvailability,
			Reason:          resp.Meta.Reason,
		},
	}
}

// FromUseCaseSlot конвертирует слот; пустые списки отдаются как [], а не null
func FromUseCaseSlot(slot findSlots.Slot) SlotResponse {
	reasons := slot.Reasons
	if reasons == nil {
		reasons = []string{}
	}

	suggestions := make([]TableSuggestionResponse, len(slot.SuggestedTables))
	for i, s := range slot.SuggestedTables {
		suggestions[i] = TableSuggestionResponse{Tables: s.Tables, Seats: s.Seats, Type: s.Type}
	}

	return SlotResponse{
		Start:             slot.Start,
		End:               slot.End,
		Label:             slot.Label,
		Status:            slot.Status,
		AvailableCapacity: slot.AvailableCapacity,
		RequestedParty:    slot.RequestedParty,
		WaitlistAvailable: slot.WaitlistAvailable,
		Reasons:           reasons,
		SuggestedTables:   suggestions,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Формат даты проверяет сам use case, здесь разбираются только числа
func ToUseCaseRequest(query url.Values) (*findSlots.Request, error) {
	req := &findSlots.Request{
		Date:    strings.TrimSpace(query.Get("date")),
		Meal:    query.Get("meal"),
		EventID: query.Get("event_id"),
	}

	party, err := strconv.Atoi(strings.TrimSpace(query.Get("party")))
	if err != nil {
		return nil, fmt.Errorf("party: %w", err)
	}
	req.Party = party

	// Нечисловой room, как и room <= 0, означает поиск по всем залам
	if roomID, err := strconv.ParseInt(strings.TrimSpace(query.Get("room")), 10, 64); err == nil {
		req.RoomID = &roomID
	}

	return req, nil
}

package find_slots

import (
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// BuildSlotPayload собирает слот для ответа
func BuildSlotPayload(slot domain.Slot, waitlistEnabled bool) Slot {
	reasons := make([]string, len(slot.Reasons))
	copy(reasons, slot.Reasons)

	suggestions := make([]TableSuggestion, 0, len(slot.SuggestedTables))
	for _, s := range slot.SuggestedTables {
		ids := make([]int64, len(s.TableIDs))
		copy(ids, s.TableIDs)
		suggestions = append(suggestions, TableSuggestion{
			Tables: ids,
			Seats:  s.Seats,
			Type:   string(s.Type),
		})
	}

	return Slot{
		Start:             slot.Start.Format(time.RFC3339),
		End:               slot.End.Format(time.RFC3339),
		Label:             slot.Label(),
		Status:            string(slot.Status),
		AvailableCapacity: slot.AvailableCapacity,
		RequestedParty:    slot.RequestedParty,
		WaitlistAvailable: waitlistEnabled && slot.Status == domain.SlotFull,
		Reasons:           reasons,
		SuggestedTables:   suggestions,
	}
}

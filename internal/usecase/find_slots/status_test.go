package find_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

func TestDetermineStatus(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		ceiling   int
		party     int
		want      domain.SlotStatus
	}{
		{name: "nothing left", remaining: 0, ceiling: 40, party: 1, want: domain.SlotFull},
		{name: "negative", remaining: -3, ceiling: 0, party: 1, want: domain.SlotFull},
		{name: "less than party", remaining: 3, ceiling: 40, party: 4, want: domain.SlotFull},

		{name: "heuristic limited", remaining: 7, ceiling: 0, party: 4, want: domain.SlotLimited},
		{name: "heuristic available at double", remaining: 8, ceiling: 0, party: 4, want: domain.SlotAvailable},
		{name: "heuristic exact party", remaining: 4, ceiling: 0, party: 4, want: domain.SlotLimited},

		{name: "ratio at quarter", remaining: 10, ceiling: 40, party: 2, want: domain.SlotLimited},
		{name: "ratio above quarter", remaining: 11, ceiling: 40, party: 2, want: domain.SlotAvailable},
		{name: "ratio clamped above one", remaining: 60, ceiling: 40, party: 2, want: domain.SlotAvailable},
		{name: "ratio mode ignores double party", remaining: 5, ceiling: 8, party: 4, want: domain.SlotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineStatus(tt.remaining, tt.ceiling, tt.party))
		})
	}
}

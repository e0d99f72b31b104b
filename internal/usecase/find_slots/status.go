package find_slots

import "github.com/m04kA/SMC-TableAvailability/internal/domain"

// limitedRatio доля оставшейся вместимости, начиная с которой слот считается limited
const limitedRatio = 0.25

// DetermineStatus статус слота по оставшейся вместимости
// ceiling = 0 означает, что предел неизвестен: тогда limited, если мест меньше чем на две такие компании
func DetermineStatus(remaining, ceiling, party int) domain.SlotStatus {
	if remaining <= 0 || remaining < party {
		return domain.SlotFull
	}

	if ceiling <= 0 {
		if remaining < party*2 {
			return domain.SlotLimited
		}
		return domain.SlotAvailable
	}

	ratio := float64(remaining) / float64(ceiling)
	ratio = min(max(ratio, 0), 1)
	if ratio <= limitedRatio {
		return domain.SlotLimited
	}
	return domain.SlotAvailable
}

package check_slot

import (
	"fmt"

	"github.com/m04kA/SMC-TableAvailability/pkg/types"
)

// validateRequest валидирует и нормализует время; дату и размер компании проверяет find_slots
func validateRequest(req *Request) (types.TimeString, error) {
	if req.Time.IsZero() {
		return "", fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	slotTime, err := types.NewTimeStringFromString(string(req.Time))
	if err != nil {
		return "", fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	return slotTime, nil
}

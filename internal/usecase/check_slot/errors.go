package check_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_slot: invalid input data")

	// ErrInvalidTimeSlot возвращается, когда на это время слот не формируется (вне часов работы или не по шагу)
	ErrInvalidTimeSlot = errors.New("check_slot: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот существует, но забронировать его нельзя
	ErrSlotNotAvailable = errors.New("check_slot: slot is not available")

	// ErrDependencyFailure возвращается, если хранилище недоступно
	ErrDependencyFailure = errors.New("check_slot: dependency failure")
)

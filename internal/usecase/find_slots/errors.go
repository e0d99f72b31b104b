package find_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается, если дата не в формате YYYY-MM-DD или не существует
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidParty возвращается, если размер компании не положителен
	ErrInvalidParty = errors.New("invalid party size")

	// ErrDependencyFailure возвращается, если хранилище недоступно или вернуло некорректные данные
	ErrDependencyFailure = errors.New("usecase: dependency failure")
)

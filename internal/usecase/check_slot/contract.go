package check_slot

import (
	"context"

	"github.com/m04kA/SMC-TableAvailability/internal/usecase/find_slots"
)

// SlotFinder расчет доступности на день
type SlotFinder interface {
	Execute(ctx context.Context, req *find_slots.Request) (*find_slots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

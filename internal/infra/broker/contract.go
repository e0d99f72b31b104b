package broker

import "context"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Handler обработчик входящих событий инвалидации
type Handler interface {
	HandleInvalidation(ctx context.Context, event InvalidationEvent) error
}

// HandlerFunc позволяет использовать функцию как Handler
type HandlerFunc func(ctx context.Context, event InvalidationEvent) error

// HandleInvalidation вызывает f(ctx, event)
func (f HandlerFunc) HandleInvalidation(ctx context.Context, event InvalidationEvent) error {
	return f(ctx, event)
}

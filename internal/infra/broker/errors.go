package broker

import "errors"

var (
	// ErrConnect возвращается при ошибке подключения к RabbitMQ
	ErrConnect = errors.New("broker: failed to connect")

	// ErrPublish возвращается при ошибке публикации сообщения
	ErrPublish = errors.New("broker: failed to publish")

	// ErrDecode возвращается для сообщений, которые не удалось разобрать
	ErrDecode = errors.New("broker: failed to decode message")
)

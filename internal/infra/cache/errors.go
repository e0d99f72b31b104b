package cache

import "errors"

var (
	// ErrConnect возвращается, если Redis недоступен при старте
	ErrConnect = errors.New("cache: failed to connect")

	// ErrGet возвращается при ошибке чтения из кеша
	ErrGet = errors.New("cache: failed to get value")

	// ErrSet возвращается при ошибке записи в кеш
	ErrSet = errors.New("cache: failed to set value")

	// ErrInvalidate возвращается при ошибке сброса кеша
	ErrInvalidate = errors.New("cache: failed to invalidate")
)

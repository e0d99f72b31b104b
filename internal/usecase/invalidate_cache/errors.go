package invalidate_cache

import "errors"

var (
	// ErrUnknownEvent возвращается для событий, которые не влияют на доступность
	ErrUnknownEvent = errors.New("invalidate_cache: unknown event")

	// ErrInternal возвращается, если кеш не удалось сбросить
	ErrInternal = errors.New("invalidate_cache: internal error")
)

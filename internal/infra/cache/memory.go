package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache кеш в памяти процесса
// Подходит для одного экземпляра сервиса; при нескольких экземплярах используйте RedisCache
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	generation uint64
	clock      TimeProvider
}

// NewMemoryCache создает пустой кеш в памяти
func NewMemoryCache(clock TimeProvider) *MemoryCache {
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		clock:   clock,
	}
}

// Get возвращает значение, если оно есть и не истекло
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	now := c.clock.Now()

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !now.Before(entry.expiresAt) {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && !now.Before(current.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}

	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, true, nil
}

// Generation текущее поколение кеша
func (c *MemoryCache) Generation(_ context.Context) (uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation, nil
}

// SetIfGeneration сохраняет копию значения на ttl, если поколение не изменилось
func (c *MemoryCache) SetIfGeneration(_ context.Context, generation uint64, key string, value []byte, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, nil
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != generation {
		return false, nil
	}
	c.entries[key] = memoryEntry{value: stored, expiresAt: c.clock.Now().Add(ttl)}
	return true, nil
}

// InvalidateAll удаляет все значения и начинает новое поколение
func (c *MemoryCache) InvalidateAll(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.generation++
	c.mu.Unlock()
	return nil
}

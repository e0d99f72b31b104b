package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout   = 2 * time.Second
	scanBatchSize = 100

	generationKeyName = "__generation"
)

// RedisOptions параметры подключения к Redis
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient создает клиент и проверяет соединение
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: NewRedisClient - ping %s: %v", ErrConnect, opts.Addr, err)
	}
	return client, nil
}

// RedisCache кеш в Redis, общий для всех экземпляров сервиса
// Все ключи хранятся с префиксом, InvalidateAll удаляет только их
type RedisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCache создает кеш поверх клиента Redis
func NewRedisCache(client redis.UniversalClient, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

// Get читает значение по ключу
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get - key %s: %v", ErrGet, key, err)
	}
	return value, true, nil
}

// Generation текущее поколение кеша; отсутствие ключа означает 0
func (c *RedisCache) Generation(ctx context.Context) (uint64, error) {
	generation, err := c.client.Get(ctx, c.generationKey()).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Generation: %v", ErrGet, err)
	}
	return generation, nil
}

// setIfGenerationScript сравнение поколения и запись одной командой на стороне Redis
var setIfGenerationScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// SetIfGeneration записывает значение с TTL, если поколение не изменилось
func (c *RedisCache) SetIfGeneration(ctx context.Context, generation uint64, key string, value []byte, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return false, nil
	}
	ttlMillis := ttl.Milliseconds()
	if ttlMillis < 1 {
		ttlMillis = 1
	}

	stored, err := setIfGenerationScript.Run(ctx, c.client,
		[]string{c.generationKey(), c.key(key)},
		strconv.FormatUint(generation, 10), value, ttlMillis,
	).Int()
	if err != nil {
		return false, fmt.Errorf("%w: SetIfGeneration - key %s: %v", ErrSet, key, err)
	}
	return stored == 1, nil
}

// InvalidateAll начинает новое поколение и удаляет все ключи с префиксом кеша
// Поколение увеличивается до удаления ключей
func (c *RedisCache) InvalidateAll(ctx context.Context) error {
	generationKey := c.generationKey()
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateAll - incr generation: %v", ErrInvalidate, err)
	}

	var cursor uint64
	pattern := c.key("*")

	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("%w: InvalidateAll - scan: %v", ErrInvalidate, err)
		}

		stale := keys[:0]
		for _, k := range keys {
			if k != generationKey {
				stale = append(stale, k)
			}
		}
		if len(stale) > 0 {
			if err := c.client.Del(ctx, stale...).Err(); err != nil {
				return fmt.Errorf("%w: InvalidateAll - del: %v", ErrInvalidate, err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (c *RedisCache) generationKey() string {
	return c.key(generationKeyName)
}

func (c *RedisCache) key(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

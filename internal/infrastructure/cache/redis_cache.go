package cache

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// RedisSettingCache caché de settings respaldada por Redis.
type RedisSettingCache struct {
	client *redis.Client
}

// NewRedisSettingCache crea el cliente de Redis.
func NewRedisSettingCache(addr, password string, db int) *RedisSettingCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisSettingCache{client: client}
}

// Ping verifica la conexión.
func (c *RedisSettingCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (c *RedisSettingCache) Close() error {
	return c.client.Close()
}

func (c *RedisSettingCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisSettingCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisSettingCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

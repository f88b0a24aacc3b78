package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisBackend persists blobs as plain Redis strings, one per collection key.
type RedisBackend struct {
	client *redis.Client
}

// NewRedisBackend wraps an existing Redis client.
func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

// OpenRedis connects to Redis and verifies the connection.
func OpenRedis(addr string) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return NewRedisBackend(client), nil
}

func (b *RedisBackend) Get(key string) ([]byte, bool, error) {
	data, err := b.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *RedisBackend) Set(key string, data []byte) error {
	return b.client.Set(context.Background(), key, data, 0).Err()
}

func (b *RedisBackend) Delete(key string) error {
	return b.client.Del(context.Background(), key).Err()
}

package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore writes each document as a plain string value without expiry.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Driver() Driver { return DriverRedis }

// Close leaves the client open; it is shared with the cart sessions and closed by the App.
func (s *RedisStore) Close() error { return nil }

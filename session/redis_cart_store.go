package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Gin_redis_lending_tracker/db"
	"Gin_redis_lending_tracker/lending"

	"github.com/redis/go-redis/v9"
)

type RedisCartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCartStore keeps carts for ttl after their last save; ttl <= 0 means no expiry.
func NewRedisCartStore(rdb *redis.Client, ttl time.Duration) *RedisCartStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisCartStore{rdb: rdb, ttl: ttl}
}

func cartKey(id string) string { return fmt.Sprintf("app:cart:%s", id) }

func (s *RedisCartStore) Create(ctx context.Context) (*lending.Cart, error) {
	c := &lending.Cart{ID: db.NewID(), Lines: []lending.CartLine{}}
	if err := s.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RedisCartStore) Get(ctx context.Context, id string) (*lending.Cart, error) {
	b, err := s.rdb.Get(ctx, cartKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	var c lending.Cart
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save rewrites the cart and restarts its TTL.
func (s *RedisCartStore) Save(ctx context.Context, c *lending.Cart) error {
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cartKey(c.ID), b, s.ttl).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, cartKey(id)).Err()
}

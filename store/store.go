// Package store is the key-value adapter the repositories persist through.
// A Store holds whole JSON documents under namespaced string keys; there are
// no transactions, no TTLs and no schema versions. Last writer wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Driver identifies a concrete backend.
type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverRedis    Driver = "redis"
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
	DriverS3       Driver = "s3"
)

// ErrNotExist is returned by Get when nothing was ever written under the key.
var ErrNotExist = errors.New("store: key does not exist")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Driver() Driver
	Close() error
}

// Namespace prefixes every key, e.g. "yeumeasy:users".
type Namespace string

func (n Namespace) Key(name string) string {
	if n == "" {
		return name
	}
	return string(n) + ":" + name
}

// GetJSON decodes the document under key into v. found is false when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, v any) (found bool, err error) {
	b, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON overwrites the document under key with the JSON encoding of v.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, b); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

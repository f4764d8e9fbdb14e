package db

import (
	"context"
	"fmt"
	"log/slog"

	"Gin_redis_lending_tracker/store"
)

type entity interface {
	GetID() string
	StoreKey() string
}

// collection is the in-memory copy of one store document. Mutations only touch
// memory; Save writes the whole slice back.
type collection[T entity] struct {
	st    store.Store
	key   string
	items []T
}

// loadCollection reads the document named by T's StoreKey under ns.
func loadCollection[T entity](ctx context.Context, st store.Store, ns store.Namespace, fallback func() []T) (*collection[T], error) {
	var zero T
	key := ns.Key(zero.StoreKey())
	c := &collection[T]{st: st, key: key}
	var items []T
	found, err := store.GetJSON(ctx, st, key, &items)
	switch {
	case err != nil && found:
		// unreadable document: start over from the defaults, same as a missing key
		slog.Warn("discarding unreadable collection", slog.String("key", key), slog.Any("error", err))
		c.items = fallback()
	case err != nil:
		return nil, fmt.Errorf("load %s: %w", key, err)
	case !found || items == nil:
		c.items = fallback()
	default:
		c.items = items
	}
	if c.items == nil {
		c.items = []T{}
	}
	return c, nil
}

func (c *collection[T]) ListAll() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) Len() int { return len(c.items) }

func (c *collection[T]) Get(id string) (T, bool) {
	for _, it := range c.items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the entity with the same id in place, or prepends a new one.
func (c *collection[T]) Upsert(v T) {
	for i, it := range c.items {
		if it.GetID() == v.GetID() {
			c.items[i] = v
			return
		}
	}
	c.items = append([]T{v}, c.items...)
}

func (c *collection[T]) RemoveByID(id string) bool {
	for i, it := range c.items {
		if it.GetID() == id {
			c.items = append(c.items[:i:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *collection[T]) Replace(items []T) {
	c.items = append([]T{}, items...)
}

func (c *collection[T]) Save(ctx context.Context) error {
	return store.SetJSON(ctx, c.st, c.key, c.items)
}

// Repo groups the three collections. None of them enforces cross-entity rules.
type Repo struct {
	Users     *UserRepo
	Equipment *EquipmentRepo
	Borrows   *BorrowRepo
}

type Options struct {
	Namespace store.Namespace
	// SeedOnEmpty fills users and equipment with sample rows when their key is absent.
	SeedOnEmpty bool
}

func NewRepo(ctx context.Context, st store.Store, opt Options) (*Repo, error) {
	users, err := LoadUsers(ctx, st, opt.Namespace, opt.SeedOnEmpty)
	if err != nil {
		return nil, err
	}
	equipment, err := LoadEquipment(ctx, st, opt.Namespace, opt.SeedOnEmpty)
	if err != nil {
		return nil, err
	}
	borrows, err := LoadBorrows(ctx, st, opt.Namespace)
	if err != nil {
		return nil, err
	}
	return &Repo{Users: users, Equipment: equipment, Borrows: borrows}, nil
}
